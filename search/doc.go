// Copyright 2025 Poiesic Systems
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


// Package search defines the pluggable web-search capability the discovery
// pipeline builds on.
//
// A Provider answers a Query with free text plus source citations and
// exposes a cheap availability probe. Concrete implementations live in
// subpackages:
//   - linkup: the Linkup HTTP API (production)
//   - llm: an OpenAI-compatible chat model (fallback / offline)
//   - mock: a configurable test double
package search
