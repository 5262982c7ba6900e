package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/models"
)

// ServiceUnitsClient reads service units and generates unit-scoped VIRINs.
type ServiceUnitsClient struct {
	conn *connection.Client
}

// List fetches every service unit visible to the caller.
func (c *ServiceUnitsClient) List(ctx context.Context) ([]models.ServiceUnit, error) {
	raw, err := c.conn.Get(ctx, "/service-unit", nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	units := make([]models.ServiceUnit, 0, len(resources))
	for i := range resources {
		unit, err := models.DecodeServiceUnit(&resources[i])
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// Get fetches a service unit by id.
func (c *ServiceUnitsClient) Get(ctx context.Context, id string) (*models.ServiceUnit, error) {
	raw, err := c.conn.Get(ctx, "/service-unit/"+id, nil)
	if err != nil {
		return nil, err
	}
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	unit, err := models.DecodeServiceUnit(res)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GenerateVIRIN asks the remote system for a VIRIN scoped to the unit and
// its branch for the given target date. The returned identifier is opaque;
// format correctness is the remote system's responsibility.
func (c *ServiceUnitsClient) GenerateVIRIN(ctx context.Context, unitID string, date time.Time) (string, error) {
	return generateVIRIN(ctx, c.conn, fmt.Sprintf("/service-unit/%s/virin", unitID), date)
}

func generateVIRIN(ctx context.Context, conn *connection.Client, endpoint string, date time.Time) (string, error) {
	res := jsonapi.NewResource("", models.KindVIRIN)
	res.Set("date", date.UTC().Format("2006-01-02"))
	raw, err := conn.Post(ctx, endpoint, jsonapi.Document{Data: res}, nil)
	if err != nil {
		return "", err
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return "", err
	}
	virin := doc.Attributes.String("virin")
	if virin == "" {
		virin = doc.ID
	}
	return virin, nil
}
