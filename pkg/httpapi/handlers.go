package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/bardo84/combygo/pkg/comby"
)

// errorBodyType and errorInfo mirror the shape of the teacher's
// sendError JSON bodies in pkg/handler/handler.go.
type errorBodyType struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorInfo struct {
	Error errorBodyType `json:"error"`
}

func (state HandlerState) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorInfo{Error: errorBodyType{Code: code, Message: message}})
}

func (state HandlerState) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	state.logger.Debug("match request", "pattern", req.Pattern, "first", req.First)

	find := comby.FindAll
	if req.First {
		find = comby.FindFirst
	}

	result, err := find(req.Text, req.Pattern, nil)
	if err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_pattern", err.Error())
		return
	}
	if len(result.Matches) == 0 {
		state.sendError(w, http.StatusNotFound, "no_match", "pattern did not match")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(struct {
		Matches interface{} `json:"matches"`
	}{Matches: result.Matches})
}

func (state HandlerState) handleReplace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	state.logger.Debug("replace request", "pattern", req.Pattern, "first", req.First)

	find := comby.FindAll
	if req.First {
		find = comby.FindFirst
	}

	result, err := find(req.Text, req.Pattern, &req.Replacement)
	if err != nil {
		state.sendError(w, http.StatusBadRequest, "bad_pattern", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(struct {
		Text string `json:"text"`
	}{Text: result.Text})
}
