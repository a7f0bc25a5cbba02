package testutil

// SampleSource is a small terno program touching every statement form.
var SampleSource = `// sample program
let count: int = 10;
const names: [str];

def add(a: int, b: int): int {
  let total = a + b * 2;
  return total;
}

{
  let inner = (count + 1) * 3;
  count += inner;
}
;
`

// LexErrorSource contains a character no lexer rule accepts.
var LexErrorSource = "let price = 5 $ 2;\n"

// ParseErrorSource is lexically valid but misses a semicolon.
var ParseErrorSource = "let a = 1\nlet b = 2;\n"

// SampleConfigYAML is a project config overriding every section.
var SampleConfigYAML = `
log:
  level: debug
  file: terno.log
log_rotation:
  max_size_mb: 5
  max_backups: 1
  max_age_days: 2
  compress: false
`
