// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment variable lookup so that configuration
loading can be tested without touching the process environment.

[config.Load] reads its HTTPEXCEPTION_* overrides through a [Reader]:

	cfg, err := config.Load(path, &env.OSReader{})

[MapReader] serves a fixed set of variables:

	cfg, err := config.Load("", env.MapReader{"HTTPEXCEPTION_LOG_LEVEL": "debug"})

Tests that need to assert which variables are consulted use the generated
mock in the mocks sub-package:

	reader := mocks.NewMockReader(gomock.NewController(t))
	reader.EXPECT().LookupEnv("HTTPEXCEPTION_LOG_LEVEL").Return("debug", true)

[config.Load]: https://pkg.go.dev/github.com/stacklok/httpexception/config#Load
*/
package env
