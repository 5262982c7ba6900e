package submit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/internal/mock"
	"github.com/dvidshub/submit.go/pkg/models"
)

func TestServiceUnitsList(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":[
			{"id":"s1","type":"service_unit","attributes":{"name":"1st Combat Camera Squadron","abbreviation":"1CTCS","branch":"air_force","requires_approval":true}},
			{"id":"s2","type":"service_unit","attributes":{"name":"Navy Public Affairs Support Element","abbreviation":"NPASE","branch":"navy"}}
		]}`},
	)
	client := newTestClient(t, transport)

	units, err := client.ServiceUnits().List(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, models.BranchAirForce, units[0].Branch)
	assert.True(t, units[0].RequiresApproval)
	assert.Equal(t, models.BranchNavy, units[1].Branch)
	assert.False(t, units[1].RequiresApproval)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/service-unit", calls[0].Path)
}

func TestServiceUnitsListRejectsUnknownBranch(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":[
			{"id":"s1","type":"service_unit","attributes":{"name":"Unit","abbreviation":"U","branch":"atlantis"}}
		]}`},
	)
	client := newTestClient(t, transport)

	_, err := client.ServiceUnits().List(context.Background())
	var invalid *models.InvalidEnumValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "atlantis", invalid.Value)
}

func TestServiceUnitsGet(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 200, Body: `{"data":{"id":"s1","type":"service_unit","attributes":{"name":"Unit","abbreviation":"U","branch":"army","external_id":"EXT-7"}}}`},
	)
	client := newTestClient(t, transport)

	unit, err := client.ServiceUnits().Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "EXT-7", unit.ExternalID)
	assert.Equal(t, models.BranchArmy, unit.Branch)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/service-unit/s1", calls[0].Path)
}

func TestServiceUnitGenerateVIRIN(t *testing.T) {
	transport := mock.NewClient(
		mock.Response{Status: 201, Body: `{"data":{"id":"v1","type":"virin","attributes":{"virin":"240415-F-AB123-0007"}}}`},
	)
	client := newTestClient(t, transport)

	virin, err := client.ServiceUnits().GenerateVIRIN(context.Background(), "s1", time.Date(2024, 4, 15, 22, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "240415-F-AB123-0007", virin)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/service-unit/s1/virin", calls[0].Path)

	var doc jsonapi.Document
	require.NoError(t, json.Unmarshal(calls[0].Body, &doc))
	require.NotNil(t, doc.Data)
	assert.Equal(t, "virin", doc.Data.Type)
	assert.Equal(t, "2024-04-15", doc.Data.Attributes.String("date"))
}

func TestGenerateVIRINFallsBackToID(t *testing.T) {
	// some deployments return the identifier only, without a virin attribute
	transport := mock.NewClient(
		mock.Response{Status: 201, Body: `{"data":{"id":"240415-F-AB123-0008","type":"virin"}}`},
	)
	client := newTestClient(t, transport)

	virin, err := client.ServiceUnits().GenerateVIRIN(context.Background(), "s1", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "240415-F-AB123-0008", virin)
}
