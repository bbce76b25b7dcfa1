// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package generate drafts policy text and candidate statements with an
// external language model. The rest of the service treats its output as
// opaque strings.
package generate
