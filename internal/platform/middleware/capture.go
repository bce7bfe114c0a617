// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
)

type requestSlotKey struct{}

// captureRequest stores a slot in the context that [Authenticate] fills with
// the request it forwards, letting outer middleware see the caller.
func captureRequest(request *http.Request, slot **http.Request) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), requestSlotKey{}, slot))
}

func publishRequest(request *http.Request) {
	if slot, ok := request.Context().Value(requestSlotKey{}).(**http.Request); ok && slot != nil {
		*slot = request
	}
}
