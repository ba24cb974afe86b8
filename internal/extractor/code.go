package extractor

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mvp-joe/docpair/internal/dataset"
)

// CodeExtractor locates the command implementation class of a project and
// cuts its command method out of the source.
type CodeExtractor struct {
	extensions    map[string]bool
	classPattern  *regexp.Regexp
	methodPattern *regexp.Regexp
	braceMode     BraceMode
}

// NewCodeExtractor creates an extractor for classes implementing
// interfaceName and methods called methodName.
func NewCodeExtractor(sourceExtensions []string, interfaceName, methodName string, mode BraceMode) (*CodeExtractor, error) {
	if strings.TrimSpace(interfaceName) == "" || strings.TrimSpace(methodName) == "" {
		return nil, fmt.Errorf("interface and method names are required")
	}
	if mode == "" {
		mode = BraceBalanced
	}
	if mode != BraceBalanced && mode != BraceGreedy {
		return nil, fmt.Errorf("unknown brace mode %q", mode)
	}

	// public [sealed|partial|...] class Name : [Base, ...][Namespace.]Interface
	classPattern := regexp.MustCompile(
		`public\s+(?:(?:sealed|partial|abstract|static|unsafe|internal)\s+)*class\s+(\w+)\s*:\s*` +
			`(?:[\w.<>]+\s*,\s*)*(?:[\w.]+\.)?` + regexp.QuoteMeta(interfaceName) + `\b`)

	// public ReturnType Method(   -- the parameter list is matched by hand
	methodPattern := regexp.MustCompile(
		`public\s+(?:(?:override|virtual|static|async)\s+)*[\w.]+(?:<[^<>{};]*>)?(?:\[\])?\??\s+` +
			regexp.QuoteMeta(methodName) + `\s*\(`)

	return &CodeExtractor{
		extensions:    extensionSet(sourceExtensions),
		classPattern:  classPattern,
		methodPattern: methodPattern,
		braceMode:     mode,
	}, nil
}

// Extract scans the project's source files in walk order and returns the key
// code of the first file declaring an implementation class, or nil.
func (e *CodeExtractor) Extract(projectDir string) *dataset.KeyCode {
	files, err := e.sourceFiles(projectDir)
	if err != nil {
		log.Printf("Warning: failed to list sources in %s: %v\n", projectDir, err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("Warning: failed to read %s: %v\n", file, err)
			continue
		}
		if kc := e.ExtractSource(decodeLenient(data)); kc != nil {
			return kc
		}
	}
	return nil
}

// ExtractSource applies the class and method patterns to one file's content.
// It returns nil when no implementation class is declared. A declared class
// without a recognizable method yields an empty ExecuteMethod.
func (e *CodeExtractor) ExtractSource(content string) *dataset.KeyCode {
	m := e.classPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	return &dataset.KeyCode{
		ClassName:     m[1],
		ExecuteMethod: e.methodFragment(content),
	}
}

// methodFragment returns the method from its signature through the closing
// brace of its body, or "" when no signature is followed by a body.
func (e *CodeExtractor) methodFragment(content string) string {
	for _, loc := range e.methodPattern.FindAllStringIndex(content, -1) {
		open, ok := bodyStart(content, loc[1]-1)
		if !ok {
			continue
		}

		switch e.braceMode {
		case BraceGreedy:
			end := strings.LastIndexByte(content, '}')
			if end < open {
				return ""
			}
			return content[loc[0] : end+1]
		default:
			end, _ := matchBrace(content, open)
			return content[loc[0] : end+1]
		}
	}
	return ""
}

// bodyStart takes the index of a parameter list's '(' and returns the index
// of the '{' that follows its matching ')', if only whitespace separates them.
func bodyStart(src string, paren int) (int, bool) {
	depth := 0
	i := paren
	for ; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '"':
			i = skipString(src, i, false, false)
		case '{', ';':
			return 0, false
		}
		if depth == 0 {
			break
		}
	}
	if depth != 0 {
		return 0, false
	}

	for i++; i < len(src); i++ {
		switch src[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return i, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// sourceFiles lists every source file under dir in lexical walk order.
func (e *CodeExtractor) sourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Printf("Warning: failed to read %s: %v\n", path, err)
			return nil
		}
		if !d.IsDir() && e.extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
