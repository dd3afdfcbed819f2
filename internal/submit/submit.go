// Package submit forwards a validated booking request to the third-party
// form-processing endpoint. It only ships metadata: file contents never
// reach the engine, so the attachment list carries names and sizes.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/form"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
)

// Client posts booking requests to the processing endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Request is the payload the processing endpoint receives.
type Request struct {
	Contact        form.Contact     `json:"contact"`
	SecondOccupant *form.Contact    `json:"second_occupant,omitempty"`
	Unit           string           `json:"unit"`
	CheckIn        string           `json:"check_in"`
	CheckOut       string           `json:"check_out"`
	Estimate       pricing.Estimate `json:"estimate"`
	Situation      any              `json:"situation"`
	Documents      []DocumentEntry  `json:"documents"`
}

// DocumentEntry summarizes the files attached under one category.
type DocumentEntry struct {
	Category documents.Category `json:"category"`
	Count    int                `json:"count"`
	Files    []string           `json:"files"`
}

// Build assembles the request payload from a snapshot that already passed
// evaluation, plus its estimate.
func Build(snap form.Snapshot, est pricing.Estimate) Request {
	req := Request{
		Contact:        snap.Contact,
		SecondOccupant: snap.SecondOccupant,
		Unit:           string(snap.Unit),
		CheckIn:        snap.CheckIn.Format("02/01/2006"),
		CheckOut:       snap.CheckOut.Format("02/01/2006"),
		Estimate:       est,
		Situation:      snap.Situation,
	}
	for _, cat := range documents.Required(est.StayType, snap.Situation) {
		files := snap.Attached(cat)
		entry := DocumentEntry{Category: cat, Count: len(files)}
		for _, f := range files {
			entry.Files = append(entry.Files, f.Name)
		}
		req.Documents = append(req.Documents, entry)
	}
	return req
}

// Send posts the request. Callers are expected to have run form.Evaluate
// and form.CheckAttachments first; Send does not re-validate.
func (c *Client) Send(ctx context.Context, req Request) error {
	if c.endpoint == "" {
		return fmt.Errorf("no submission endpoint configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submission endpoint returned %s", resp.Status)
	}
	return nil
}
