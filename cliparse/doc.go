/*
Package cliparse handles configuration from CLI flags and environment.

Flags take priority over environment variables. The ADMIN_TOKEN secret is
required; everything else has a development-friendly default.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Settings:

  - -p / PORT: server port (default 4280)
  - -d / DATABASE_PATH: SQLite database path (default terminfinder.db)
  - -admin-token / ADMIN_TOKEN: secret gating the /admin endpoints (required)
  - -base-url / BASE_URL: public base URL used in share links
*/
package cliparse
