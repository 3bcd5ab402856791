package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

// nodeMock serves fixture files the way a catapult REST gateway would
type nodeMock struct {
	logger   zerolog.Logger
	fixtures string
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newRouter(fixtures string, rate float64) *mux.Router {
	n := &nodeMock{
		logger:   log.With().Str("module", "nem_mock").Logger(),
		fixtures: fixtures,
	}
	lmt := tollbooth.NewLimiter(rate, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetMessage(`{"code":"TooManyRequests","message":"You have reached maximum request limit."}`)
	lmt.SetMessageContentType("application/json")

	router := mux.NewRouter()
	handle := func(path string, f http.HandlerFunc) {
		router.Handle(path, tollbooth.LimitFuncHandler(lmt, f)).Methods(http.MethodGet, http.MethodOptions)
	}
	handle("/network", n.fixtureHandler("network/network.json"))
	handle("/chain/height", n.fixtureHandler("chain/height.json"))
	handle("/chain/score", n.fixtureHandler("chain/score.json"))
	handle("/diagnostic/storage", n.fixtureHandler("diagnostic/storage.json"))
	handle("/block/{height:[0-9]+}", n.blockHandler)
	handle("/block/{height:[0-9]+}/transactions", n.transactionsHandler)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.writeError(w, http.StatusNotFound, "ResourceNotFound", fmt.Sprintf("no route for %s", r.URL.Path))
	})
	router.Use(mux.CORSMethodMiddleware(router))
	router.Use(customCORSHeader())
	return router
}

func customCORSHeader() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			next.ServeHTTP(w, req)
		})
	}
}

func (n *nodeMock) readFixture(name string) ([]byte, error) {
	return ioutil.ReadFile(filepath.Join(n.fixtures, filepath.FromSlash(name)))
}

func (n *nodeMock) writeJSON(w http.ResponseWriter, status int, content []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(content); err != nil {
		n.logger.Error().Err(err).Msg("fail to write response")
	}
}

func (n *nodeMock) writeError(w http.ResponseWriter, status int, code, message string) {
	buf, err := json.Marshal(errorResponse{Code: code, Message: message})
	if err != nil {
		n.logger.Error().Err(err).Msg("fail to marshal error response")
		return
	}
	n.writeJSON(w, status, buf)
}

func (n *nodeMock) fixtureHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n.logger.Debug().Str("path", r.URL.Path).Msg("hit")
		content, err := n.readFixture(name)
		if err != nil {
			n.logger.Error().Err(err).Str("fixture", name).Msg("fail to read fixture")
			n.writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
			return
		}
		n.writeJSON(w, http.StatusOK, content)
	}
}

func (n *nodeMock) blockHandler(w http.ResponseWriter, r *http.Request) {
	height := mux.Vars(r)["height"]
	content, err := n.readFixture(fmt.Sprintf("block/%s.json", height))
	if err != nil {
		n.logger.Debug().Str("height", height).Msg("no block fixture")
		n.writeError(w, http.StatusNotFound, "ResourceNotFound", fmt.Sprintf("no resource exists with id '%s'", height))
		return
	}
	n.writeJSON(w, http.StatusOK, content)
}

// transactionsHandler pages through the transactions fixture using pageSize, id and order
func (n *nodeMock) transactionsHandler(w http.ResponseWriter, r *http.Request) {
	height := mux.Vars(r)["height"]
	content, err := n.readFixture(fmt.Sprintf("block/%s_transactions.json", height))
	if err != nil {
		n.writeError(w, http.StatusNotFound, "ResourceNotFound", fmt.Sprintf("no resource exists with id '%s'", height))
		return
	}
	var txs []json.RawMessage
	if err := json.Unmarshal(content, &txs); err != nil {
		n.writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
		return
	}
	query := r.URL.Query()
	switch query.Get("order") {
	case "", "asc":
	case "desc":
		for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
			txs[i], txs[j] = txs[j], txs[i]
		}
	default:
		n.writeError(w, http.StatusConflict, "InvalidArgument", "order must be asc or desc")
		return
	}
	if id := query.Get("id"); len(id) > 0 {
		txs = after(txs, id)
	}
	if raw := query.Get("pageSize"); len(raw) > 0 {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 0 {
			n.writeError(w, http.StatusConflict, "InvalidArgument", "pageSize must not be negative")
			return
		}
		if pageSize < len(txs) {
			txs = txs[:pageSize]
		}
	}
	buf, err := json.Marshal(txs)
	if err != nil {
		n.writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
		return
	}
	n.writeJSON(w, http.StatusOK, buf)
}

// after returns the transactions listed after the one with the given meta id, nothing when the id is unknown
func after(txs []json.RawMessage, id string) []json.RawMessage {
	for i, tx := range txs {
		var item struct {
			Meta struct {
				ID string `json:"id"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(tx, &item); err != nil {
			continue
		}
		if item.Meta.ID == id {
			return txs[i+1:]
		}
	}
	return []json.RawMessage{}
}

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	fixtures := flag.String("fixtures", "./test/fixtures/endpoints", "folder holding the endpoint fixtures")
	rate := flag.Float64("rate", 60, "max requests per second per client")
	logLevel := flag.StringP("log-level", "l", "info", "Log Level")
	flag.Parse()

	l, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(os.Stdout).With().Str("service", "nemMock").Logger()

	srv := &http.Server{
		Addr:    *addr,
		Handler: newRouter(*fixtures, *rate),
	}
	log.Info().Str("addr", *addr).Str("fixtures", *fixtures).Msg("running nemMock")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("nemMock stopped")
	}
}
