// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notes holds the state of the notes screen: the text currently
// typed into the input field and the ordered list of added notes.
//
// [State] is mutated only from the UI event loop and is not safe for
// concurrent use. [Snapshot] and [Restore] convert it to and from the
// saved state bundle the host keeps across recreation.
package notes
