// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded before flags are parsed.
Values already present in the environment win over the file.

# CLI Flags and Environment Variables

	-p               PORT             Server port (default: 3318)
	-d               DATABASE_URL     Database URL or SQLite path (required)
	-t               DATABASE_TYPE    sqlite (default) or postgres
	-allowed-origin  ALLOWED_ORIGIN   CORS origin (default: echo request Origin)
	-openai-key      OPENAI_API_KEY   Enables text generation when set
	-openai-url      OPENAI_BASE_URL  Default https://api.openai.com/v1
	-model           OPENAI_MODEL     Default gpt-4o-mini

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, PORT is not a
number, or DATABASE_TYPE is not one of the supported drivers.
*/
package cliparse
