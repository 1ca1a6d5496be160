package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/partner-plan-api/pkg/apiErrors"
	"github.com/vfg2006/partner-plan-api/pkg/log"
)

const (
	// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
	CorrelationIDHeader = "X-Correlation-ID"

	slowRequestThreshold = 500 * time.Millisecond
	maxErrorBodySize     = 1 << 10
)

// LoggingMiddleware registra cada requisição com o ID de correlação. Respostas de
// erro da API têm o código (VAL_004, RES_001, ...) e o campo rejeitado copiados para o log.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			log.ForContext(ctx).WithFields(log.Fields{
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Debug("Requisição recebida")

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rec.status,
				"duration_ms": elapsed.Milliseconds(),
			}
			for k, v := range rec.apiErrorFields() {
				fields[k] = v
			}

			logger := log.ForContext(ctx).WithFields(fields)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rec.status == http.StatusUnprocessableEntity:
				logger.Warn("Entrada do plano rejeitada")
			case rec.status >= http.StatusBadRequest:
				logger.Warn("Requisição rejeitada")
			default:
				logger.Info("Requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// statusRecorder guarda o status e, em respostas de erro, o início do corpo
type statusRecorder struct {
	http.ResponseWriter
	status    int
	errorBody bytes.Buffer
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status >= http.StatusBadRequest {
		if room := maxErrorBodySize - rec.errorBody.Len(); room > 0 {
			rec.errorBody.Write(b[:min(room, len(b))])
		}
	}
	return rec.ResponseWriter.Write(b)
}

// apiErrorFields extrai code e details.field do corpo no formato apiErrors.APIError
func (rec *statusRecorder) apiErrorFields() log.Fields {
	if rec.errorBody.Len() == 0 {
		return nil
	}

	var apiErr apiErrors.APIError
	if err := jsoniter.Unmarshal(rec.errorBody.Bytes(), &apiErr); err != nil || apiErr.Code == "" {
		return nil
	}

	fields := log.Fields{"error_code": apiErr.Code}
	if details, ok := apiErr.Details.(map[string]any); ok {
		if field, ok := details["field"].(string); ok && field != "" {
			fields["field"] = field
		}
	}
	return fields
}

// LogPanicMiddleware converte um panic do handler em SRV_001 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := debug.Stack()
				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"error":  fmt.Sprint(recovered),
				})

				if log.IsDevelopment() {
					logger.Error("Panic ao processar requisição")
					fmt.Fprintf(os.Stderr, "\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Panic ao processar requisição")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
