// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It dispatches a command name and its operands to the account server
// through an [adapter.AccountAdapter] and prints the result as JSON.
package client
