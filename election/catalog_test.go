package election

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGradesAndGroups(gradeCount, groupsPerGrade int) ([]GradeRef, []GroupRef) {
	var grades []GradeRef
	var groups []GroupRef
	for i := 1; i <= gradeCount; i++ {
		gradeID := fmt.Sprintf("grade-%d", i)
		grades = append(grades, GradeRef{ID: gradeID, Name: fmt.Sprintf("Grade %d", i)})
		for j := 1; j <= groupsPerGrade; j++ {
			groups = append(groups, GroupRef{
				ID:      fmt.Sprintf("%s-group-%d", gradeID, j),
				GradeID: gradeID,
				Name:    fmt.Sprintf("%d-%d", i, j),
				Active:  true,
			})
		}
	}
	return grades, groups
}

func TestBuildCatalog(t *testing.T) {
	t.Run("one institution office plus group representatives", func(t *testing.T) {
		grades, groups := testGradesAndGroups(3, 2)

		seats := BuildCatalog(CatalogConfig{
			Personero:           true,
			GroupRepresentative: true,
		}, grades, groups)

		// 1 institution-wide + 2 groups x 3 grades, nothing per grade
		assert.Len(t, seats, 7)

		offices := map[OfficeType]int{}
		for _, seat := range seats {
			offices[seat.Office]++
		}
		assert.Equal(t, 1, offices[OfficePersonero])
		assert.Equal(t, 0, offices[OfficeGradeRep])
		assert.Equal(t, 6, offices[OfficeGroupRep])
	})

	t.Run("all offices enabled", func(t *testing.T) {
		grades, groups := testGradesAndGroups(3, 2)

		seats := BuildCatalog(CatalogConfig{
			Personero:           true,
			Contralor:           true,
			GradeRepresentative: true,
			GroupRepresentative: true,
		}, grades, groups)

		assert.Len(t, seats, 2+3+6)
	})

	t.Run("institution seats carry no scope", func(t *testing.T) {
		seats := BuildCatalog(CatalogConfig{Personero: true, Contralor: true}, nil, nil)

		assert.Len(t, seats, 2)
		for _, seat := range seats {
			assert.Empty(t, seat.GradeID)
			assert.Empty(t, seat.GroupID)
		}
	})

	t.Run("grade seats reference their grade", func(t *testing.T) {
		grades, _ := testGradesAndGroups(2, 0)

		seats := BuildCatalog(CatalogConfig{GradeRepresentative: true}, grades, nil)

		assert.Len(t, seats, 2)
		assert.Equal(t, "grade-1", seats[0].GradeID)
		assert.Equal(t, "grade-2", seats[1].GradeID)
	})

	t.Run("inactive groups get no seat", func(t *testing.T) {
		grades, groups := testGradesAndGroups(1, 2)
		groups[1].Active = false

		seats := BuildCatalog(CatalogConfig{GroupRepresentative: true}, grades, groups)

		assert.Len(t, seats, 1)
		assert.Equal(t, groups[0].ID, seats[0].GroupID)
		assert.Equal(t, groups[0].GradeID, seats[0].GradeID)
	})

	t.Run("nothing enabled yields empty catalog", func(t *testing.T) {
		grades, groups := testGradesAndGroups(3, 2)
		assert.Empty(t, BuildCatalog(CatalogConfig{}, grades, groups))
	})
}
