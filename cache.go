// Copyright 2025 Lachstec
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered output stays useful for the lifetime of one invocation;
	// a short expiry keeps memory bounded in the interactive explorer.
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for Graphviz output keyed by DOT text
// and format. Intermediate-tree mode produces many identical shapes;
// serving them from the cache avoids spawning dot again.
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func CacheRendered(c *cache.Cache, key string, out []byte) {
	c.Set(key, out, renderCacheExpiration)
}

func GetRendered(c *cache.Cache, key string) ([]byte, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	return val.([]byte), true
}
