package serializer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/konekte/resourcehub/backend/internal/api/serializer"
	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode declares no rules, so only the path guard stops cycles.
type fakeNode struct {
	key       string
	rules     []string
	fields    map[string]any
	relations map[string]any
}

func (n *fakeNode) SerializeKey() string               { return n.key }
func (n *fakeNode) SerializeRules() []string           { return n.rules }
func (n *fakeNode) SerializeFields() map[string]any    { return n.fields }
func (n *fakeNode) SerializeRelations() map[string]any { return n.relations }

func TestSerialize_PathGuardBreaksCycles(t *testing.T) {
	a := &fakeNode{key: "a", fields: map[string]any{"name": "a"}}
	b := &fakeNode{key: "b", fields: map[string]any{"name": "b"}}
	a.relations = map[string]any{"peer": b, "peers": []any{b}}
	b.relations = map[string]any{"peer": a, "peers": []any{a, b}}

	out := serializer.Serialize(a)

	peer := out["peer"].(map[string]any)
	assert.Equal(t, "b", peer["name"])
	assert.NotContains(t, peer, "peer")
	assert.Empty(t, peer["peers"])

	_, err := json.Marshal(out)
	assert.NoError(t, err)
}

func TestSerialize_NestedRulesApplyAtChild(t *testing.T) {
	child := &fakeNode{key: "c", fields: map[string]any{"id": "c", "secret": "x"}}
	root := &fakeNode{
		key:       "r",
		rules:     []string{"-child.secret"},
		fields:    map[string]any{"id": "r", "internal": true},
		relations: map[string]any{"child": child},
	}

	out := serializer.Serialize(root, "-internal")

	assert.NotContains(t, out, "internal")
	assert.Equal(t, map[string]any{"id": "c"}, out["child"])
}

func TestSerialize_MaxDepthStopsRelations(t *testing.T) {
	level3 := &fakeNode{key: "3", fields: map[string]any{"depth": 3}}
	level2 := &fakeNode{key: "2", fields: map[string]any{"depth": 2}, relations: map[string]any{"next": level3}}
	level1 := &fakeNode{key: "1", fields: map[string]any{"depth": 1}, relations: map[string]any{"next": level2}}
	root := &fakeNode{key: "0", fields: map[string]any{"depth": 0}, relations: map[string]any{"next": level1}}

	s := &serializer.Serializer{MaxDepth: 2}
	out := s.Serialize(root)

	second := out["next"].(map[string]any)["next"].(map[string]any)
	assert.Equal(t, 2, second["depth"])
	assert.NotContains(t, second, "next")
}

func providerGraph() *entities.ServiceProvider {
	owner := &entities.User{ID: "u-1", Name: "Ana", Email: "ana@x.com"}
	reviewer := &entities.User{ID: "u-2", Name: "Jean", Email: "jean@x.com"}
	provider := &entities.ServiceProvider{
		ID:          "sp-1",
		Name:        "Clinic A",
		Category:    entities.CategoryMedicalHealth,
		Description: "Free primary care",
		Location:    "Port-au-Prince",
		UserID:      owner.ID,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		User:        owner,
	}
	review := &entities.Review{
		ID:                "r-1",
		Rating:            4,
		Comment:           "Good care",
		UserID:            reviewer.ID,
		ServiceProviderID: provider.ID,
		User:              reviewer,
		ServiceProvider:   provider,
	}
	provider.Reviews = []*entities.Review{review}
	owner.ServiceProviders = []*entities.ServiceProvider{provider}
	reviewer.Reviews = []*entities.Review{review}
	return provider
}

func TestSerialize_ServiceProviderNeverNestsItself(t *testing.T) {
	provider := providerGraph()

	out := serializer.Serialize(provider, "-user.service_providers", "-reviews.service_provider")

	user := out["user"].(map[string]any)
	assert.NotContains(t, user, "service_providers")

	reviews := out["reviews"].([]any)
	require.Len(t, reviews, 1)
	review := reviews[0].(map[string]any)
	assert.NotContains(t, review, "service_provider")
	assert.Equal(t, "Jean", review["user"].(map[string]any)["name"])
	assert.NotContains(t, review["user"], "reviews")

	assert.Equal(t, 4.0, out["average_rating"])
	assert.Equal(t, 1, out["review_count"])
	assert.NotContains(t, out, "reviewers")
}

func TestSerialize_DefaultRulesAloneAreCycleFree(t *testing.T) {
	provider := providerGraph()

	data, err := json.Marshal(serializer.Serialize(provider))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	review := decoded["reviews"].([]any)[0].(map[string]any)
	assert.NotContains(t, review, "service_provider")
}

func TestSerialize_UserCreateShape(t *testing.T) {
	user := &entities.User{ID: "u-1", Name: "Ana Smith", Email: "ana@x.com", Reviews: []*entities.Review{}}

	out := serializer.Serialize(user, "-service_providers", "-reviews")

	assert.Equal(t, "ana@x.com", out["email"])
	assert.NotContains(t, out, "reviews")
	assert.NotContains(t, out, "service_providers")
}

func TestSerializeList_EmptyIsNotNil(t *testing.T) {
	out := serializer.SerializeList([]*entities.Review{})

	require.NotNil(t, out)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
