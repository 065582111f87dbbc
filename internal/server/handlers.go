package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	stderrors "github.com/Kelvin-Wepo/Rafiki.ai/internal/common/errors"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/metrics"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/session"
)

type analyzeRequest struct {
	Utterance string        `json:"utterance"`
	SessionID string        `json:"session_id"`
	History   []models.Turn `json:"history"`
}

type analyzeResponse struct {
	SessionID string        `json:"session_id"`
	Result    models.Result `json:"result"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewInvalidUtteranceError("unreadable request body"))
		return
	}

	if err := validateJSON(analyzeSchema, body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	var sessionCtx *models.SessionContext
	if req.SessionID != "" {
		sessionCtx, err = s.sessions.Load(r.Context(), req.SessionID)
		if err != nil {
			// Analysis is still possible without context; degrade rather
			// than fail the request.
			s.logger.Warn("session load failed", map[string]interface{}{
				"sessionId": req.SessionID,
				"error":     err.Error(),
			})
			sessionCtx = nil
		}
	}

	start := time.Now()
	result := s.analyzer.Analyze(req.Utterance, req.History, sessionCtx)
	elapsed := time.Since(start)

	metrics.AnalysisDuration.WithLabelValues(string(result.Intent)).Observe(elapsed.Seconds())
	metrics.UtterancesProcessed.WithLabelValues(string(result.Intent), string(result.Language)).Inc()
	if s.obs != nil {
		s.obs.RecordUtterance(r.Context(), string(result.Intent), string(result.Language))
		s.obs.RecordAnalysisDuration(r.Context(), elapsed, string(result.Intent))
	}

	updated := models.SessionContext{}
	if sessionCtx != nil {
		updated = *sessionCtx
	}
	updated.LastIntent = result.Intent

	if err := s.sessions.Save(r.Context(), sessionID, updated); err != nil {
		s.logger.Warn("session save failed", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}

	s.sendWorkflowConfirmation(r.Context(), result)

	s.writeJSON(w, http.StatusOK, analyzeResponse{
		SessionID: sessionID,
		Result:    result,
	})
}

// sendWorkflowConfirmation delivers a summary of the resolved workflow over
// the channels the caller left a recipient for: SMS when the workflow asks
// for one and a phone number was extracted, email whenever an email address
// was extracted. Delivery failures are logged, never surfaced to the caller.
func (s *Server) sendWorkflowConfirmation(ctx context.Context, result models.Result) {
	if result.Workflow == nil {
		return
	}

	message := "Rafiki: your request for '" + result.Workflow.Name + "' has been received."

	if result.Workflow.SMSConfirmation && result.Entities.PhoneNumber != nil {
		if err := s.channels.SMS.Send(ctx, *result.Entities.PhoneNumber, message); err != nil {
			s.logger.Warn("sms confirmation send failed", map[string]interface{}{
				"workflow": result.Workflow.Name,
				"error":    err.Error(),
			})
		}
	}

	if result.Entities.Email != nil {
		if err := s.channels.Email.Send(ctx, *result.Entities.Email, message); err != nil {
			s.logger.Warn("email confirmation send failed", map[string]interface{}{
				"workflow": result.Workflow.Name,
				"error":    err.Error(),
			})
		}
	}
}

type detectRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewInvalidUtteranceError("unreadable request body"))
		return
	}

	if err := validateJSON(detectSchema, body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	var req detectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	var sessionCtx *models.SessionContext
	if req.SessionID != "" {
		if sc, err := s.sessions.Load(r.Context(), req.SessionID); err == nil {
			sessionCtx = sc
		}
	}

	s.writeJSON(w, http.StatusOK, s.analyzer.Detector().Detect(req.Text, sessionCtx))
}

func (s *Server) handleDetectSwitches(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewInvalidUtteranceError("unreadable request body"))
		return
	}

	if err := validateJSON(detectSchema, body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	var req detectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	segments := s.analyzer.Detector().DetectSwitches(req.Text)
	if segments == nil {
		segments = []models.CodeSwitchSegment{}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"segments": segments,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	sessionCtx, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, stderrors.NewSessionLoadFailedError(err))
		return
	}
	if sessionCtx == nil {
		s.writeError(w, http.StatusNotFound, stderrors.NewSessionNotFoundError(sessionID))
		return
	}

	s.writeJSON(w, http.StatusOK, sessionCtx)
}

type pinLanguageRequest struct {
	Language string `json:"language"`
}

func (s *Server) handlePinLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewInvalidUtteranceError("unreadable request body"))
		return
	}

	if err := validateJSON(pinLanguageSchema, body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	var req pinLanguageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.NewValidationFailedError(err.Error()))
		return
	}

	sessionCtx, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, stderrors.NewSessionLoadFailedError(err))
		return
	}

	updated, ok := s.analyzer.Detector().PinLanguage(sessionCtx, models.Language(req.Language))
	if !ok {
		s.writeError(w, http.StatusBadRequest, stderrors.NewUnsupportedLanguageError(req.Language))
		return
	}

	if err := s.sessions.Save(r.Context(), sessionID, updated); err != nil {
		s.writeError(w, http.StatusInternalServerError, stderrors.NewSessionSaveFailedError(err))
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := s.sessions.Ping(r.Context()); err != nil {
		// The pipeline is pure computation; a session store outage degrades
		// the service but does not take it down.
		status = "degraded"
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
