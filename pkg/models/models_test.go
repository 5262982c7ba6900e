package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/models"
)

// roundTrip pushes an encoded resource through JSON, the way it travels on
// the wire, and hands back the re-decoded resource object.
func roundTrip(t *testing.T, res *jsonapi.Resource) *jsonapi.Resource {
	t.Helper()
	out, err := json.Marshal(jsonapi.Document{Data: res})
	require.NoError(t, err)
	var doc jsonapi.Document
	require.NoError(t, json.Unmarshal(out, &doc))
	require.NotNil(t, doc.Data)
	return doc.Data
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBatchRoundTrip(t *testing.T) {
	batch := models.Batch{
		ID:                    "b1",
		CreatedAt:             timePtr(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
		ClosedAt:              timePtr(time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)),
		Closed:                true,
		SendConfirmationEmail: false,
	}
	got, err := models.DecodeBatch(roundTrip(t, batch.Encode()))
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestBatchDecodeDefaults(t *testing.T) {
	got, err := models.DecodeBatch(&jsonapi.Resource{ID: "b1", Type: models.KindBatch})
	require.NoError(t, err)
	assert.False(t, got.Closed)
	assert.True(t, got.SendConfirmationEmail)
	assert.Nil(t, got.CreatedAt)
	assert.Nil(t, got.ClosedAt)
}

func TestBatchUploadRoundTrip(t *testing.T) {
	upload := models.BatchUpload{
		ID:              "u1",
		UploadURL:       "https://cdn.example/upload/u1",
		HTTPMethod:      "POST",
		UseCDN:          true,
		MultipartParams: map[string]string{"key": "media/u1", "policy": "abc"},
		BatchID:         "b1",
	}
	got, err := models.DecodeBatchUpload(roundTrip(t, upload.Encode()))
	require.NoError(t, err)
	assert.Equal(t, upload, got)
}

func TestMultipartUploadRoundTrip(t *testing.T) {
	upload := models.MultipartUpload{ID: "m1", PartSize: 8 << 20, PartCount: 12, BatchID: "b1"}
	got, err := models.DecodeMultipartUpload(roundTrip(t, upload.Encode()))
	require.NoError(t, err)
	assert.Equal(t, upload, got)
}

func TestPhotoRoundTrip(t *testing.T) {
	photo := models.Photo{
		ID:            "p1",
		Title:         "Flight line",
		Description:   "Crews prepare aircraft",
		Instructions:  "Credit as provided",
		DateTaken:     timePtr(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)),
		VIRIN:         "240501-F-AB123-0001",
		CountryCode:   "US",
		Subdivision:   "TX",
		City:          "San Antonio",
		Status:        models.PhotoStatusUploaded,
		Tags:          []string{"aircraft", "maintenance"},
		AuthorIDs:     []string{"a1", "a2"},
		BatchUploadID: "u1",
		ServiceUnitID: "s1",
		ThemeIDs:      []string{"t1"},
	}
	got, err := models.DecodePhoto(roundTrip(t, photo.Encode()))
	require.NoError(t, err)
	assert.Equal(t, photo, got)
}

func TestPhotoDecodeDefaults(t *testing.T) {
	got, err := models.DecodePhoto(&jsonapi.Resource{ID: "p1", Type: models.KindPhoto})
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, "", got.VIRIN)
	assert.Equal(t, []string{}, got.Tags)
	assert.Empty(t, got.AuthorIDs)
	assert.Equal(t, models.PhotoStatus(""), got.Status)
}

func TestPhotoThumbnailIsDecodeOnly(t *testing.T) {
	res := &jsonapi.Resource{
		ID:   "p1",
		Type: models.KindPhoto,
		Attributes: jsonapi.Attributes{
			"title":                  "t",
			"thumbnail_url_template": "https://cdn.example/{size}/p1.jpg",
		},
	}
	got, err := models.DecodePhoto(res)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/{size}/p1.jpg", got.ThumbnailURLTemplate)

	encoded := got.Encode()
	assert.False(t, encoded.Attributes.Has("thumbnail_url_template"))
}

func TestPhotoStatusRejection(t *testing.T) {
	res := &jsonapi.Resource{
		ID:         "p1",
		Type:       models.KindPhoto,
		Attributes: jsonapi.Attributes{"status": "misplaced"},
	}
	_, err := models.DecodePhoto(res)
	var enumErr *models.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "misplaced", enumErr.Value)
}

func TestPhotoValidate(t *testing.T) {
	photo := models.Photo{Title: "t", VIRIN: "v", CountryCode: "US"}
	require.NoError(t, photo.Validate())

	var missing *models.MissingAttributeError

	photo.Title = ""
	require.ErrorAs(t, photo.Validate(), &missing)
	assert.Equal(t, "title", missing.Attribute)

	photo = models.Photo{Title: "t", CountryCode: "US"}
	require.ErrorAs(t, photo.Validate(), &missing)
	assert.Equal(t, "virin", missing.Attribute)
}

func TestGraphicRoundTrip(t *testing.T) {
	graphic := models.Graphic{
		ID:            "g1",
		Title:         "Recruiting poster",
		Description:   "Poster artwork",
		Instructions:  "None",
		DateTaken:     timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		VIRIN:         "240601-N-CD456-0002",
		CountryCode:   "US",
		Subdivision:   "CA",
		City:          "San Diego",
		Status:        models.GraphicStatusNeedsApproval,
		Tags:          []string{"poster"},
		AuthorIDs:     []string{"a3"},
		BatchUploadID: "u2",
		ServiceUnitID: "s2",
		ThemeIDs:      []string{"t2", "t3"},
	}
	got, err := models.DecodeGraphic(roundTrip(t, graphic.Encode()))
	require.NoError(t, err)
	assert.Equal(t, graphic, got)
}

func TestPublicationRoundTrip(t *testing.T) {
	publication := models.Publication{ID: "pub1", Name: "Base Bulletin", Description: "Weekly"}
	got, err := models.DecodePublication(roundTrip(t, publication.Encode()))
	require.NoError(t, err)
	assert.Equal(t, publication, got)
}

func TestPublicationIssueRoundTrip(t *testing.T) {
	issue := models.PublicationIssue{
		ID:            "i1",
		Title:         "Vol 3, Issue 12",
		IssueDate:     timePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
		Status:        models.PublicationIssueStatusPublished,
		PublicationID: "pub1",
		BatchUploadID: "u3",
	}
	got, err := models.DecodePublicationIssue(roundTrip(t, issue.Encode()))
	require.NoError(t, err)
	assert.Equal(t, issue, got)
}

func TestPublicationIssueValidate(t *testing.T) {
	var missing *models.MissingAttributeError
	issue := models.PublicationIssue{BatchUploadID: "u1"}
	require.ErrorAs(t, issue.Validate(), &missing)
	assert.Equal(t, "publication", missing.Attribute)
}

func TestAuthorRoundTrip(t *testing.T) {
	author := models.Author{
		ID:       "a1",
		Name:     "Alex Morgan",
		VisionID: "V-100",
		JobGrade: &models.JobGrade{
			Name:         "Sergeant",
			Abbreviation: "SGT",
			Branch:       models.BranchArmy,
		},
		ServiceUnitIDs: []string{"s1", "s2"},
	}
	got, err := models.DecodeAuthor(roundTrip(t, author.Encode()))
	require.NoError(t, err)
	assert.Equal(t, author, got)
}

func TestAuthorJobGradeBranchRejection(t *testing.T) {
	res := &jsonapi.Resource{
		ID:   "a1",
		Type: models.KindAuthor,
		Attributes: jsonapi.Attributes{
			"name":      "Alex Morgan",
			"job_grade": map[string]any{"name": "Sergeant", "branch": "atlantis"},
		},
	}
	_, err := models.DecodeAuthor(res)
	var enumErr *models.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
}

func TestServiceUnitRoundTrip(t *testing.T) {
	unit := models.ServiceUnit{
		ID:               "s1",
		Name:             "1st Combat Camera Squadron",
		Abbreviation:     "1CTCS",
		Branch:           models.BranchAirForce,
		ExternalID:       "EXT-9",
		RequiresApproval: true,
	}
	got, err := models.DecodeServiceUnit(roundTrip(t, unit.Encode()))
	require.NoError(t, err)
	assert.Equal(t, unit, got)
}

func TestServiceUnitBranchRejection(t *testing.T) {
	res := &jsonapi.Resource{
		ID:         "s1",
		Type:       models.KindServiceUnit,
		Attributes: jsonapi.Attributes{"name": "Unit", "branch": "atlantis"},
	}
	_, err := models.DecodeServiceUnit(res)
	var enumErr *models.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "atlantis", enumErr.Value)

	// branch is required, not defaulted
	_, err = models.DecodeServiceUnit(&jsonapi.Resource{ID: "s1", Type: models.KindServiceUnit})
	require.Error(t, err)
}

func TestParseEnums(t *testing.T) {
	for _, s := range []string{"army", "navy", "marine_corps", "air_force", "space_force", "coast_guard", "joint", "civilian"} {
		branch, err := models.ParseBranch(s)
		require.NoError(t, err)
		assert.Equal(t, models.Branch(s), branch)
	}
	_, err := models.ParseBranch("militia")
	require.Error(t, err)

	_, err = models.ParsePhotoStatus("archived")
	require.NoError(t, err)
	_, err = models.ParsePublicationIssueStatus("archived")
	require.Error(t, err)
}
