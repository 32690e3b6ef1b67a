package jsonutil

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/atomflunder/bot-dashboard/pkg/xcontext"
)

// Fallback is returned by String when a value cannot be serialized.
const Fallback = "[]"

// String returns the compact JSON text of v with keys in field declaration
// order. It never fails: on error the cause is logged and Fallback returned.
func String(ctx context.Context, v any) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot serialize %T: %v", v, err)
		return Fallback
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
