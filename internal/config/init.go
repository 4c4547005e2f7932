package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# wikibuild configuration
site:
  title: "Requiem Wiki (2009 Archive)"
  description: "Rebuilt static archive of the 2009 Requiem Wiki"
  # home_content: ./README.md

sources:
  # Consulted in order; the first root to produce a title wins.
  - path: ./dridriou.free.fr/Requiem_Wiki/requiem-wiki.org/wiki
  - path: ./requiem-wiki.org/wiki
  # - git:
  #     url: https://example.org/salvaged-snapshots.git
  #     branch: main

output:
  directory: ./site
  clean: true

templates:
  dir: ./templates

# taxonomy:
#   rules:
#     - pattern: "Sword(s)?"
#       category: Weapons
#   featured: [Equipment, Weapons, Quests]
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
