package config

// fragmentDTO is the YAML shape of one dependency fragment file.
// A fragment declares exactly the keys below; anything else is rejected by
// strict decoding so a typo cannot silently add outputs.
type fragmentDTO struct {
	Name              string   `yaml:"name"`
	BuildInputs       []string `yaml:"buildInputs"`
	NativeBuildInputs []string `yaml:"nativeBuildInputs"`
}
