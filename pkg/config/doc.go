/*
Package config manages configuration parsing and validation for wordsub.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |                       |           |
	+-----+-----+           +----+----+  +---+-----+
	|   YAML    |           |   HCL   |  |  JSON   |
	| Parser    |           | Parser  |  | Parser  |
	+-----------+           +---------+  +---------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates configuration values (rules path, backend selector, batch block)
- Provides type-safe config access
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values and fills defaults
4. Provides validated config to the command layer

⚡ Key Responsibilities:
- Configuration parsing
- Schema validation
- Default value management (backend defaults to hash, jobs to 1)
- Format abstraction

🤝 Interfaces:
- Parser: Format-specific parsing, selected by file extension
- Config: Type-safe config access

📝 Design Philosophy:
The config package is the source of truth for all configuration. A config
file is an alternative to spelling out the three positional arguments on
every run, and the only way to drive batch mode reproducibly. It:
- Provides a clean interface for config access
- Abstracts away format-specific details
- Makes configuration errors clear and actionable

🔍 Example:

	cfg, err := config.Load(ctx, ".wordsub.yaml")
	if err != nil {
		return err
	}
	st, err := store.New(cfg.Backend)
	...
*/
package config
