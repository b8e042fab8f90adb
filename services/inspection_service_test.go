package services

import (
	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
)

func (s *serviceSuite) TestRecordInspection() {
	c := s.crop("Cotton", "10", "70", entity.CropPending)

	in, err := s.inspection.Record(s.quality.ID, c.ID, entity.GradeA, "  clean, dry bales ")
	s.Require().NoError(err)
	s.Equal("clean, dry bales", in.Notes)

	_, err = s.inspection.Record(s.quality.ID, c.ID, "Z", "")
	s.True(apperr.Is(err, apperr.InvalidInput))

	_, err = s.inspection.Record(s.quality.ID, 555, entity.GradeB, "")
	s.True(apperr.Is(err, apperr.NotFound))

	rejected := s.crop("Jute", "10", "70", entity.CropRejected)
	_, err = s.inspection.Record(s.quality.ID, rejected.ID, entity.GradeC, "")
	s.True(apperr.Is(err, apperr.InvalidState))

	_, err = s.inspection.Record(s.quality.ID, c.ID, entity.GradeB, "second look")
	s.Require().NoError(err)

	list, err := s.inspection.List(c.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(entity.GradeB, list[0].Grade, "newest first")

	_, err = s.inspection.List(555)
	s.True(apperr.Is(err, apperr.NotFound))
}
