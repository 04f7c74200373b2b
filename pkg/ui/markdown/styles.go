package markdown

// DefaultStyle is the glamour style used on color terminals.
var DefaultStyle = []byte(`{
  "document": {
    "block_prefix": "\n",
    "block_suffix": "\n",
    "margin": 0
  },
  "paragraph": {
    "block_suffix": "\n"
  },
  "list": {
    "level_indent": 2
  },
  "heading": {
    "block_suffix": "\n",
    "color": "#8BE9FD",
    "bold": true
  },
  "h1": {
    "prefix": "# ",
    "bold": true
  },
  "h2": {
    "prefix": "## ",
    "bold": true
  },
  "emph": {
    "italic": true
  },
  "strong": {
    "bold": true
  },
  "code": {
    "color": "#50FA7B"
  },
  "table": {
    "center_separator": "┼",
    "column_separator": "│",
    "row_separator": "─"
  }
}`)

// AsciiStyle is the glamour style used when color is off.
var AsciiStyle = []byte(`{
  "document": {
    "block_prefix": "\n",
    "block_suffix": "\n",
    "margin": 0
  },
  "paragraph": {
    "block_suffix": "\n"
  },
  "list": {
    "level_indent": 2
  },
  "heading": {
    "block_suffix": "\n"
  },
  "h1": {
    "prefix": "# "
  },
  "h2": {
    "prefix": "## "
  },
  "table": {
    "center_separator": "+",
    "column_separator": "|",
    "row_separator": "-"
  }
}`)
