package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/form"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
	"github.com/aniolquer/node-smart-form/pkg/rates"
)

func testSnapshot() form.Snapshot {
	return form.Snapshot{
		Unit:     rates.UnitStudioStandard,
		CheckIn:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		Contact: form.Contact{
			FirstName: "María",
			LastName:  "García",
			Email:     "maria.garcia@example.com",
			Phone:     "+34 600 123 456",
		},
		Situation: applicant.Situation{}.
			WithIncome(applicant.IncomeSufficient).
			WithWorker(applicant.WorkerEmployee),
		Attachments: map[documents.Category][]form.FileRef{
			documents.Identity:           {{Name: "dni.pdf", Size: 200_000}},
			documents.EmploymentContract: {{Name: "contrato.pdf", Size: 350_000}},
			documents.Payslips:           {{Name: "nominas.pdf", Size: 500_000}},
			documents.BankCertificate:    {{Name: "titularidad.pdf", Size: 90_000}},
		},
	}
}

func TestBuild(t *testing.T) {
	snap := testSnapshot()
	est := pricing.Compute(rates.Default, snap.Unit, snap.CheckIn, snap.CheckOut)
	require.True(t, est.Available)

	req := Build(snap, est)

	assert.Equal(t, "studio-standard", req.Unit)
	assert.Equal(t, "01/01/2026", req.CheckIn)
	assert.Equal(t, "01/04/2026", req.CheckOut)
	assert.Equal(t, snap.Contact, req.Contact)
	assert.Equal(t, est, req.Estimate)

	require.Len(t, req.Documents, 4)
	assert.Equal(t, documents.Identity, req.Documents[0].Category)
	assert.Equal(t, 1, req.Documents[0].Count)
	assert.Equal(t, []string{"dni.pdf"}, req.Documents[0].Files)
}

func TestSend(t *testing.T) {
	var received Request
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	snap := testSnapshot()
	req := Build(snap, pricing.Compute(rates.Default, snap.Unit, snap.CheckIn, snap.CheckOut))

	err := NewClient(upstream.URL).Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "studio-standard", received.Unit)
	assert.Equal(t, "maria.garcia@example.com", received.Contact.Email)
}

func TestSendUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	err := NewClient(upstream.URL).Send(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSendWithoutEndpoint(t *testing.T) {
	err := NewClient("").Send(context.Background(), Request{})
	require.Error(t, err)
}
