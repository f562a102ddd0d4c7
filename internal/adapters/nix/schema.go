package nix

import "time"

// nixHubResponse is the NixHub v2/resolve API response.
type nixHubResponse struct {
	Name    string                    `json:"name"`
	Version string                    `json:"version"`
	Summary string                    `json:"summary"`
	Systems map[string]systemResponse `json:"systems"`
}

// systemResponse is the package information for one system architecture.
type systemResponse struct {
	FlakeInstallable flakeInstallable `json:"flake_installable"`
	LastUpdated      string           `json:"last_updated"`
	Outputs          []output         `json:"outputs"`
}

// flakeInstallable is the flake reference information.
type flakeInstallable struct {
	Ref      flakeRef `json:"ref"`
	AttrPath string   `json:"attr_path"`
}

// flakeRef is the git reference for the flake.
type flakeRef struct {
	Type  string `json:"type"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	Rev   string `json:"rev"`
}

// output is one package output.
type output struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Default bool   `json:"default"`
	Nar     string `json:"nar"`
}

// cacheEntry is a cached resolution result.
type cacheEntry struct {
	Ref       string                    `json:"ref"`
	Name      string                    `json:"name"`
	Version   string                    `json:"version"`
	Systems   map[string]systemResponse `json:"systems"`
	Timestamp time.Time                 `json:"timestamp"`
}

// devEnv is the subset of `nix print-dev-env --json` output shelf consumes.
type devEnv struct {
	Variables map[string]devEnvVariable `json:"variables"`
}

// devEnvVariable is one variable of the dev environment.
type devEnvVariable struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
