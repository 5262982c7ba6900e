package submit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvidshub/submit.go/internal/mock"
	"github.com/dvidshub/submit.go/pkg/models"
)

func TestAuthorsList(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":[
			{"id":"a1","type":"author","attributes":{"name":"Sgt. Jordan Lee","vision_id":"V12345","job_grade":{"name":"Sergeant","abbreviation":"Sgt.","branch":"army"}},"relationships":{"service_units":{"data":[{"id":"s1","type":"service_unit"}]}}},
			{"id":"a2","type":"author","attributes":{"name":"Casey Morgan"}}
		]}`},
	)
	client := newTestClient(t, transport)

	authors, err := client.Authors().List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)

	require.NotNil(t, authors[0].JobGrade)
	assert.Equal(t, "Sergeant", authors[0].JobGrade.Name)
	assert.Equal(t, models.BranchArmy, authors[0].JobGrade.Branch)
	assert.Equal(t, []string{"s1"}, authors[0].ServiceUnitIDs)

	assert.Nil(t, authors[1].JobGrade)
	assert.Empty(t, authors[1].VisionID)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/author", calls[0].Path)
}

func TestAuthorsGet(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":{"id":"a1","type":"author","attributes":{"name":"Sgt. Jordan Lee","vision_id":"V12345"}}}`},
	)
	client := newTestClient(t, transport)

	author, err := client.Authors().Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Sgt. Jordan Lee", author.Name)
	assert.Equal(t, "V12345", author.VisionID)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/author/a1", calls[0].Path)
}

func TestAuthorsGetRejectsUnknownJobGradeBranch(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":{"id":"a1","type":"author","attributes":{"name":"X","job_grade":{"name":"Captain","branch":"starfleet"}}}}`},
	)
	client := newTestClient(t, transport)

	_, err := client.Authors().Get(context.Background(), "a1")
	var invalid *models.InvalidEnumValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "starfleet", invalid.Value)
}

func TestAuthorGenerateVIRIN(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 201, Body: `{"data":{"id":"v1","type":"virin","attributes":{"virin":"240415-A-ZZ000-0001"}}}`},
	)
	client := newTestClient(t, transport)

	virin, err := client.Authors().GenerateVIRIN(context.Background(), "a1", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "240415-A-ZZ000-0001", virin)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/author/a1/virin", calls[0].Path)
}
