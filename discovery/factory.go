// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package discovery

import (
	"context"
	"fmt"
	"net"

	"github.com/ebay/kanaga/config"
)

// NewLocator returns a locator as defined by the configuration, so that
// callers don't need to know which implementation of service discovery
// they're using. It returns an error if the configuration is invalid.
// Closing the given context will stop the locator from providing any more
// updates.
func NewLocator(ctx context.Context, cfg *config.Locator) (Locator, error) {
	switch cfg.Type {
	case "static":
		endpoints := make([]*Endpoint, len(cfg.Addresses))
		for i, address := range cfg.Addresses {
			host, port, err := net.SplitHostPort(address)
			if err != nil {
				return nil, fmt.Errorf("bad address in static locator: %v", err)
			}
			endpoints[i] = &Endpoint{Network: "tcp", Host: host, Port: port}
		}
		return NewStaticLocator(endpoints), nil
	default:
		return nil, fmt.Errorf("locator type not supported: %v", cfg.Type)
	}
}
