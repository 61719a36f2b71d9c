package entities_test

import (
	"testing"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestServiceProvider_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "single review", ratings: []int{4}, want: 4},
		{name: "mean", ratings: []int{5, 4}, want: 4.5},
		{name: "rounded to one decimal", ratings: []int{5, 4, 4}, want: 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := &entities.ServiceProvider{}
			for _, rating := range tt.ratings {
				sp.Reviews = append(sp.Reviews, &entities.Review{Rating: rating})
			}
			assert.Equal(t, tt.want, sp.AverageRating())
		})
	}
}

func TestServiceProvider_SerializeFields_ComputedOnlyWhenReviewsLoaded(t *testing.T) {
	sp := &entities.ServiceProvider{ID: "sp-1", Name: "Clinic A"}

	fields := sp.SerializeFields()
	assert.NotContains(t, fields, "average_rating")
	assert.NotContains(t, fields, "review_count")

	sp.Reviews = []*entities.Review{}
	fields = sp.SerializeFields()
	assert.Equal(t, float64(0), fields["average_rating"])
	assert.Equal(t, 0, fields["review_count"])
}

func TestAssociationProxies(t *testing.T) {
	ana := &entities.User{ID: "u-1", Name: "Ana"}
	ben := &entities.User{ID: "u-2", Name: "Ben"}
	clinic := &entities.ServiceProvider{ID: "sp-1", Name: "Clinic A"}
	school := &entities.ServiceProvider{ID: "sp-2", Name: "School B"}

	ana.Reviews = []*entities.Review{
		{ID: "r-1", ServiceProvider: clinic},
		{ID: "r-2", ServiceProvider: school},
		{ID: "r-3", ServiceProvider: clinic},
	}
	clinic.Reviews = []*entities.Review{
		{ID: "r-1", User: ana},
		{ID: "r-3", User: ana},
		{ID: "r-4", User: ben},
	}

	assert.Equal(t, []*entities.ServiceProvider{clinic, school}, ana.ReviewedServices())
	assert.Equal(t, []*entities.User{ana, ben}, clinic.Reviewers())
	assert.Empty(t, ben.ReviewedServices())
}
