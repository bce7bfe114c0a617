// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import "time"

// SetClock replaces the service clock in tests.
func (service *Service) SetClock(now func() time.Time) {
	service.now = now
}
