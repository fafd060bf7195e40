package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/http/middleware"
	"github.com/xavierca1/onboard-desk/internal/usecase"
)

type ClientHandler struct {
	Resolver usecase.ClientResolver
	Stage1UC *usecase.SubmitStage1UseCase
	Stage2UC *usecase.SubmitStage2UseCase
}

func NewClientHandler(
	resolver usecase.ClientResolver,
	stage1UC *usecase.SubmitStage1UseCase,
	stage2UC *usecase.SubmitStage2UseCase,
) *ClientHandler {
	return &ClientHandler{
		Resolver: resolver,
		Stage1UC: stage1UC,
		Stage2UC: stage2UC,
	}
}

// HandleGet (GET /clients/{email}) feeds the stage-2 form prefill.
func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	_, rec, err := h.Resolver.FindByEmail(r.Context(), email)
	if errors.Is(err, entity.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

type stage1Response struct {
	Record       *entity.ClientRecord `json:"record"`
	ContractName string               `json:"contract_name,omitempty"`
	ContractDocx string               `json:"contract_docx,omitempty"` // base64
}

func (h *ClientHandler) HandleStage1(w http.ResponseWriter, r *http.Request) {
	var input usecase.Stage1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.Email = chi.URLParam(r, "email")

	out, err := h.Stage1UC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordUpsert("stage1")
	writeJSON(w, http.StatusOK, stage1Response{
		Record:       out.Record,
		ContractName: out.ContractName,
		ContractDocx: base64.StdEncoding.EncodeToString(out.Contract),
	})
}

func (h *ClientHandler) HandleStage2(w http.ResponseWriter, r *http.Request) {
	var input usecase.Stage2Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.Email = chi.URLParam(r, "email")

	out, err := h.Stage2UC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordUpsert("stage2")
	writeJSON(w, http.StatusOK, out)
}
