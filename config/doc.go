/*
Package config loads the sync daemon configuration.

Configuration lives in a YAML file; secrets stay out of it and are resolved
from the environment by name. A .env file is honored for local development:

	source:
	  url: "https://api.example.com/cases/42/landmarks"
	  poll_interval: 30s
	store:
	  table: "casetrail"
	  region: "us-east-1"
	  access_key_env: "AWS_ACCESS_KEY"
	  secret_key_env: "AWS_SECRET_KEY"
	metrics:
	  addr: ":9190"
*/
package config
