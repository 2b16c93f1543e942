package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.vocdoni.io/dvote/log"
)

// httpWriteJSON helper function allows to write a JSON response.
func httpWriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}

// amountFromRequest extracts the amount_gbp parameter from the URL query,
// a form-encoded body or a JSON body, in that order. The second return
// value reports whether the caller supplied an amount at all.
func amountFromRequest(r *http.Request) (int64, bool, error) {
	raw := r.URL.Query().Get("amount_gbp")
	if raw == "" {
		contentType := r.Header.Get("Content-Type")
		if strings.HasPrefix(contentType, "application/json") {
			var body struct {
				AmountGBP *int64 `json:"amount_gbp"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
				return 0, false, fmt.Errorf("could not decode request body: %v", err)
			}
			if body.AmountGBP == nil {
				return 0, false, nil
			}
			return *body.AmountGBP, true, nil
		}
		if err := r.ParseForm(); err != nil {
			return 0, false, fmt.Errorf("could not parse request body: %v", err)
		}
		raw = r.PostFormValue("amount_gbp")
	}
	if raw == "" {
		return 0, false, nil
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("amount_gbp must be an integer: %v", err)
	}
	return amount, true, nil
}
