// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the host lifecycle of the notes screen.
//
// It restores the screen from a saved bundle, runs it, and depending on how
// the screen ended saves its snapshot for the next recreation or discards it.
// SIGINT, SIGTERM and SIGHUP tear the screen down the same way a host would
// destroy it, so the state survives to the next launch.
package client
