package config

// StarterTemplate is the commented starter configuration written by
// "mdlive init".
const StarterTemplate = `# mdlive configuration.
# See https://github.com/yaklabco/mdlive for documentation.

# Quiet period (milliseconds) before edits are persisted to the host store.
# Visual re-rendering is always immediate; only the outbound notification is
# debounced.
debounce_ms: 300

# Markdown flavor for "mdlive export": gfm or commonmark.
flavor: gfm

# Colorized terminal output: auto, always, or never.
color: auto

# Page title for standalone HTML exports. Empty uses the first heading.
export_title: ""
`
