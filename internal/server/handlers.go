package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniolquer/node-smart-form/internal/submit"
	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/form"
	"github.com/aniolquer/node-smart-form/pkg/i18n"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
	"github.com/aniolquer/node-smart-form/pkg/rates"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

const dateLayout = "2006-01-02"

// estimateRequest carries the live pricing inputs. Dates are optional: the
// frontend calls this on every change, including half-filled states.
type estimateRequest struct {
	Unit     string `json:"unit"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// snapshotRequest is the wire form of a full wizard snapshot.
type snapshotRequest struct {
	Unit           string                    `json:"unit"`
	CheckIn        string                    `json:"check_in"`
	CheckOut       string                    `json:"check_out"`
	Contact        form.Contact              `json:"contact"`
	PartySize      int                       `json:"party_size"`
	SecondOccupant *form.Contact             `json:"second_occupant"`
	Situation      applicant.Situation       `json:"situation"`
	Attachments    map[string][]form.FileRef `json:"attachments"`
}

func (s *Server) messages(c *gin.Context) *i18n.Provider {
	lang := c.Query("lang")
	if lang == "" {
		lang = s.cfg.DefaultLanguage
	}
	return i18n.NewProvider(lang)
}

func parseDate(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r snapshotRequest) snapshot() form.Snapshot {
	snap := form.Snapshot{
		Unit:           rates.Unit(r.Unit),
		CheckIn:        parseDate(r.CheckIn),
		CheckOut:       parseDate(r.CheckOut),
		Contact:        r.Contact,
		PartySize:      r.PartySize,
		SecondOccupant: r.SecondOccupant,
		Situation:      r.Situation,
	}
	if len(r.Attachments) > 0 {
		snap.Attachments = make(map[documents.Category][]form.FileRef, len(r.Attachments))
		for cat, files := range r.Attachments {
			snap.Attachments[documents.Category(cat)] = files
		}
	}
	return snap
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleUnits(c *gin.Context) {
	type unitInfo struct {
		ID    rates.Unit  `json:"id"`
		Tiers []stay.Type `json:"tiers"`
	}
	units := make([]unitInfo, 0, len(rates.Units))
	for _, u := range rates.Units {
		info := unitInfo{ID: u, Tiers: []stay.Type{}}
		for _, tier := range stay.Types {
			if _, exists, _ := s.table.Price(u, tier, stay.SeasonApril); exists {
				info.Tiers = append(info.Tiers, tier)
			}
		}
		units = append(units, info)
	}
	c.JSON(http.StatusOK, gin.H{"units": units})
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est := pricing.Compute(s.table, rates.Unit(req.Unit), parseDate(req.CheckIn), parseDate(req.CheckOut))
	c.JSON(http.StatusOK, est)
}

func (s *Server) handleDocuments(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, checkOut := parseDate(req.CheckIn), parseDate(req.CheckOut)
	stayType := stay.Type("")
	if !checkIn.IsZero() && !checkOut.IsZero() {
		if st, err := stay.Classify(checkIn, checkOut); err == nil {
			stayType = st
		}
	}

	msgs := s.messages(c)
	type docInfo struct {
		ID          documents.Category `json:"id"`
		Label       string             `json:"label"`
		Description string             `json:"description"`
	}
	required := documents.Required(stayType, req.Situation)
	docs := make([]docInfo, 0, len(required))
	for _, cat := range required {
		docs = append(docs, docInfo{
			ID:          cat,
			Label:       msgs.DocumentLabel(cat),
			Description: msgs.DocumentDescription(cat),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stay_type": stayType,
		"documents": docs,
	})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := req.snapshot()
	report := form.Evaluate(s.table, snap, s.messages(c))
	c.JSON(http.StatusOK, gin.H{
		"valid":       report.Valid,
		"diagnostics": report.Diagnostics,
		"stage":       form.Stage(s.table, snap),
	})
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := req.snapshot()
	msgs := s.messages(c)

	report := form.Evaluate(s.table, snap, msgs)
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"valid":       false,
			"diagnostics": report.Diagnostics,
		})
		return
	}

	if violations := form.CheckAttachments(snap, s.cfg.Limits); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"valid":      false,
			"violations": violations,
		})
		return
	}

	est := pricing.Compute(s.table, snap.Unit, snap.CheckIn, snap.CheckOut)
	if err := s.submit.Send(c.Request.Context(), submit.Build(snap, est)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "submitted"})
}
