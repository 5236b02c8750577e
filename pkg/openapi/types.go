/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

// Error is the body returned with any non-2xx status.
type Error struct {
	Detail string `json:"detail"`
}

// NewError returns an error body with the given detail.
func NewError(detail string) *Error {
	return &Error{
		Detail: detail,
	}
}
