package httpadapter

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"audithook/internal/api"
	"audithook/internal/domain"
	"audithook/internal/ports"
)

const defaultMaxBodyBytes = 1 << 20

// Server implements the generated StrictServerInterface.
type Server struct {
	auditor   ports.Auditor
	resources ports.Resources
	network   ports.Network
	validator *api.Validator
	maxBody   int64
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(auditor ports.Auditor, resources ports.Resources, network ports.Network, validator *api.Validator) *Server {
	return &Server{auditor: auditor, resources: resources, network: network, validator: validator, maxBody: defaultMaxBodyBytes}
}

// WithMaxBodyBytes caps the size of request bodies.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBody = n
	}
	return s
}

// Routes returns a chi.Router mounting the generated handlers. Bodies are
// size-limited and schema-checked before the generated decoder sees them.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Message: "method not allowed"})
	})
	r.Use(s.limitBody)
	r.Use(s.validator.Middleware(requestError))

	r.Get("/api/openapi.yaml", getDocument)
	// an empty address segment never reaches the generated {accountAddress} route
	r.Get("/api/base/balance", missingAddress)
	r.Get("/api/base/balance/", missingAddress)

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: requestError})
	return r
}

func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
		}
		next.ServeHTTP(w, r)
	})
}

func getDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(api.Document()); err != nil {
		log.Printf("write openapi document: %v", err)
	}
}

func missingAddress(w http.ResponseWriter, _ *http.Request) {
	writeError(w, ports.Invalid("accountAddress", "Account address is required"), "")
}

// Strict handler methods

func (s *Server) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetResources(ctx context.Context, _ api.GetResourcesRequestObject) (api.GetResourcesResponseObject, error) {
	list := s.resources.List(ctx)
	out := make(api.GetResources200JSONResponse, 0, len(list))
	for _, res := range list {
		out = append(out, api.Resource{Id: res.ID, Title: res.Title, Description: res.Description, Url: res.URL})
	}
	return out, nil
}

func (s *Server) PostAudit(ctx context.Context, req api.PostAuditRequestObject) (api.PostAuditResponseObject, error) {
	if req.Body == nil {
		return api.PostAudit400JSONResponse(toError(bodyError("missing body"))), nil
	}
	res, err := s.auditor.Submit(ctx, toAuditRequest(*req.Body))
	var verr *ports.ValidationError
	switch {
	case errors.As(err, &verr):
		return api.PostAudit400JSONResponse(toError(verr)), nil
	case err != nil:
		return api.PostAudit500JSONResponse(internalError("Failed to process audit request", err)), nil
	}
	return api.PostAudit200JSONResponse(toAuditResult(res)), nil
}

func (s *Server) GetBaseNetwork(ctx context.Context, _ api.GetBaseNetworkRequestObject) (api.GetBaseNetworkResponseObject, error) {
	info := s.network.Info()
	return api.GetBaseNetwork200JSONResponse{Network: info.Network, ExplorerBaseUrl: info.ExplorerBaseURL}, nil
}

func (s *Server) GetBaseBalance(ctx context.Context, req api.GetBaseBalanceRequestObject) (api.GetBaseBalanceResponseObject, error) {
	bal, err := s.network.Balance(ctx, req.AccountAddress)
	var verr *ports.ValidationError
	switch {
	case errors.As(err, &verr):
		return api.GetBaseBalance400JSONResponse(toError(verr)), nil
	case err != nil:
		return api.GetBaseBalance500JSONResponse(internalError("Failed to fetch account balance", err)), nil
	}
	out := api.GetBaseBalance200JSONResponse{AccountAddress: bal.AccountAddress, Balance: bal.Balance, Network: bal.Network}
	if bal.ChecksumAddress != "" {
		out.ChecksumAddress = &bal.ChecksumAddress
	}
	return out, nil
}

func (s *Server) GetBaseContracts(ctx context.Context, _ api.GetBaseContractsRequestObject) (api.GetBaseContractsResponseObject, error) {
	contracts, err := s.network.DeployedContracts(ctx)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return api.GetBaseContracts404JSONResponse{Message: "No deployed contracts found"}, nil
	case err != nil:
		return api.GetBaseContracts500JSONResponse(internalError("Failed to fetch deployed contracts", err)), nil
	}
	return api.GetBaseContracts200JSONResponse(contracts), nil
}

// toAuditRequest resolves every unset option to true so the evaluator only
// ever sees a fully populated AuditOptions.
func toAuditRequest(b api.AuditRequest) domain.AuditRequest {
	opts := domain.DefaultAuditOptions()
	if o := b.Options; o != nil {
		opts.VulnerabilityScan = orTrue(o.VulnerabilityScan)
		opts.GasOptimization = orTrue(o.GasOptimization)
		opts.BestPractices = orTrue(o.BestPractices)
		opts.AIRecommendations = orTrue(o.AiRecommendations)
	}
	return domain.AuditRequest{ContractSource: b.ContractSource, Options: opts}
}

func orTrue(b *bool) bool { return b == nil || *b }

func toAuditResult(res domain.AuditResult) api.AuditResult {
	findings := make([]api.Finding, 0, len(res.Findings))
	for _, f := range res.Findings {
		out := api.Finding{
			Category:    api.FindingCategory(f.Category),
			Severity:    api.FindingSeverity(f.Severity),
			Title:       f.Title,
			Description: f.Description,
		}
		if f.Location != "" {
			loc := f.Location
			out.Location = &loc
		}
		findings = append(findings, out)
	}
	return api.AuditResult{
		SecurityScore: res.SecurityScore,
		IssuesCount:   res.IssuesCount,
		GasEfficiency: res.GasEfficiency,
		Findings:      findings,
	}
}
