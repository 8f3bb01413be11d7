package api

import (
	"fmt"

	"github.com/lcardenas7/Edusyn-sub000/api/controllers"
	"github.com/lcardenas7/Edusyn-sub000/api/transport"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/metrics"
	"github.com/lcardenas7/Edusyn-sub000/reports"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	metrics.Bootstrap()

	r := transport.NewRouter(s.config.GinMode)

	// Create storage
	db, err := storage.Open(s.config.DatabasePath)
	if err != nil {
		logging.Log.Errorf("failed to open storage: %v", err)
		panic("failed to open storage")
	}

	processStorage := &storage.GormProcessStorage{DB: db}
	electionStorage := &storage.GormElectionStorage{DB: db}
	candidateStorage := &storage.GormCandidateStorage{DB: db}
	voteStorage := &storage.GormVoteStorage{DB: db}
	resultStorage := &storage.GormResultStorage{DB: db}
	enrollmentStorage := &storage.GormEnrollmentStorage{DB: db}

	//Register controllers
	processController := controllers.NewProcessController(processStorage, electionStorage, enrollmentStorage)
	processController.RegisterRoutes(r)
	candidateController := controllers.NewCandidateController(candidateStorage, electionStorage, processStorage)
	candidateController.RegisterRoutes(r)
	votingController := controllers.NewVotingController(processStorage, electionStorage, candidateStorage, voteStorage, enrollmentStorage)
	votingController.RegisterRoutes(r)
	resultsController := controllers.NewResultsController(processStorage, electionStorage, resultStorage, voteStorage, enrollmentStorage)
	resultsController.RegisterRoutes(r)
	reportsController := controllers.NewReportsController(processStorage, electionStorage, candidateStorage, resultStorage, voteStorage, enrollmentStorage, &reports.TextRenderer{})
	reportsController.RegisterRoutes(r)

	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", s.config.Port))

	if err := r.Run(fmt.Sprintf(":%d", s.config.Port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
