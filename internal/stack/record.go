package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/gonzen2310/singlylinkedlist/internal/xstring"
)

type recordOptions struct {
	packagePath  bool
	structName   bool
	functionName bool
	fileName     bool
	line         bool
	lambdas      bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func StructName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.structName = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the caller at the given depth. Depth 0 is the function calling Call.
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		structName:   true,
		functionName: true,
		fileName:     true,
		line:         true,
		lambdas:      true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	var name string
	if f := runtime.FuncForPC(c.function); f != nil {
		name = strings.ReplaceAll(f.Name(), "[...]", "")
	}
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	pkgPath, pkgName, structName, funcName, lambdas := parseFunctionName(name)

	buffer := xstring.Buffer()
	defer buffer.Free()
	if options.packagePath && pkgPath != "" {
		buffer.WriteString(pkgPath)
		buffer.WriteByte('/')
	}
	buffer.WriteString(pkgName)
	if options.structName && structName != "" {
		buffer.WriteByte('.')
		buffer.WriteString(structName)
	}
	if options.functionName {
		buffer.WriteByte('.')
		buffer.WriteString(funcName)
		if options.lambdas {
			for i := range lambdas {
				buffer.WriteByte('.')
				buffer.WriteString(lambdas[len(lambdas)-i-1])
			}
		}
	}
	if options.fileName {
		buffer.WriteByte('(')
		buffer.WriteString(file)
		if options.line {
			buffer.WriteByte(':')
			buffer.WriteString(strconv.Itoa(c.line))
		}
		buffer.WriteByte(')')
	}

	return buffer.String()
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

func parseFunctionName(name string) (pkgPath, pkgName, structName, funcName string, lambdas []string) {
	if i := strings.LastIndex(name, "/"); i > -1 {
		pkgPath, name = name[:i], name[i+1:]
	}
	split := strings.Split(name, ".")
	lambdas = extractLambdas(split)
	split = split[:len(split)-len(lambdas)]
	if len(split) > 0 {
		pkgName = split[0]
	}
	if len(split) > 1 {
		funcName = split[len(split)-1]
	}
	if len(split) > 2 {
		structName = split[1]
	}

	return pkgPath, pkgName, structName, funcName, lambdas
}

func extractLambdas(split []string) (lambdas []string) {
	lambdas = make([]string, 0, len(split))
	for i := range split {
		elem := split[len(split)-i-1]
		if !strings.HasPrefix(elem, "func") {
			break
		}
		lambdas = append(lambdas, elem)
	}

	return lambdas
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
