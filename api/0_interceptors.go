package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/annodb/database"
	"github.com/fulldump/annodb/service"
	"github.com/fulldump/annodb/store"
)

var RecoverFromPanic = box.RecoverFromPanic

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	return r.RemoteAddr[0:strings.LastIndex(r.RemoteAddr, ":")]
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: opening"))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: closing"))
				return
			}
			next(ctx)
		}
	}
}

// PrettyErrorInterceptor maps the store error kinds to HTTP statuses and
// encodes a uniform error body.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		w.WriteHeader(errorStatus(err))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message":     err.Error(),
				"description": errorDescription(err),
			},
		})
	}
}

func errorStatus(err error) int {
	switch {
	case err == box.ErrResourceNotFound:
		return http.StatusNotFound
	case err == box.ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.Is(err, service.ErrorStoreNotFound),
		errors.Is(err, store.ErrorUnknownID),
		errors.Is(err, store.ErrorUnknownType),
		errors.Is(err, store.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrorStoreAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, store.ErrorUnknownAttribute),
		errors.Is(err, store.ErrorEmptyType),
		errors.Is(err, store.ErrorIndexOutOfRange):
		return http.StatusBadRequest
	}
	if _, ok := err.(*json.SyntaxError); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorDescription(err error) string {
	if err == box.ErrResourceNotFound {
		return "this endpoint does not exist, please check the documentation"
	}
	if _, ok := err.(*json.SyntaxError); ok {
		return "Malformed JSON"
	}
	if errors.Is(err, store.ErrorInconsistentState) {
		return "the store views disagree, this is a bug"
	}
	return "Unexpected error"
}
