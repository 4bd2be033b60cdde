// Package slicer extracts class and method units from Java source text.
//
// Slicing is two-tiered: a structural parse enumerates declarations and
// drives header-matched block extraction; when the parse fails for the
// whole file, a regex fallback re-scans the raw text. The two strategies
// are never mixed within one file.
package slicer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
)

// ErrParseFailure indicates the structural parse rejected the whole file.
// It is not surfaced to callers of Slice; it selects the fallback path.
var ErrParseFailure = errors.New("structural parse failed")

var (
	fallbackClassRe  = regexp.MustCompile(`(public\s+|private\s+|protected\s+)?(abstract\s+|final\s+)?class\s+(\w+)`)
	fallbackMethodRe = regexp.MustCompile(`(public|private|protected)?\s+(static\s+)?[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(throws\s+[\w,\s]+)?\s*\{`)
)

// Slicer slices Java source code into analyzable units.
type Slicer struct {
	cfg config.SlicerConfig
}

// New creates a slicer with the given bounds.
func New(cfg config.SlicerConfig) *Slicer {
	if cfg.MinMethodLOC <= 0 {
		cfg.MinMethodLOC = 3
	}
	if cfg.MaxClassLOC <= 0 {
		cfg.MaxClassLOC = 1000
	}
	return &Slicer{cfg: cfg}
}

// SliceFile reads and slices a Java source file.
func (s *Slicer) SliceFile(path string) (*models.SliceResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.Slice(string(data), path), nil
}

// Slice slices source text into class units (each owning its nested
// methods) and standalone method units. It never fails hard: a structural
// parse failure degrades to the regex fallback, and an unextractable
// declaration is dropped while scanning continues.
func (s *Slicer) Slice(source, filePath string) *models.SliceResult {
	result := &models.SliceResult{
		FilePath: filePath,
		Classes:  []*models.SourceUnit{},
		Methods:  []*models.SourceUnit{},
		TotalLOC: CountLOC(source),
		Strategy: models.StrategyStructural,
	}

	classes, err := s.sliceStructural(source, filePath)
	if err != nil {
		result.Strategy = models.StrategyFallback
		result.Classes = s.extractClassesFallback(source, filePath)
		result.Methods = s.extractMethodsFallback(source, filePath, 0)
		return result
	}

	result.Classes = classes
	return result
}

// declaredMethod is a method declaration enumerated by the parse.
type declaredMethod struct {
	name           string
	parameterCount int
}

// declaredClass is a class declaration enumerated by the parse.
type declaredClass struct {
	name       string
	isAbstract bool
	fieldCount int
	methods    []declaredMethod
}

// sliceStructural runs the primary strategy: parse declarations, then
// extract each declared entity from the raw text by header match plus
// block extraction.
func (s *Slicer) sliceStructural(source, filePath string) ([]*models.SourceUnit, error) {
	decls, err := parseDeclarations(source)
	if err != nil {
		return nil, err
	}

	classes := make([]*models.SourceUnit, 0, len(decls))
	for _, decl := range decls {
		unit := s.extractClass(decl, source, filePath)
		if unit != nil {
			classes = append(classes, unit)
		}
	}
	return classes, nil
}

// parseDeclarations enumerates class declarations (with their direct
// methods and fields) using the Java grammar. A tree containing parse
// errors rejects the whole file.
func parseDeclarations(source string) ([]declaredClass, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	src := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrParseFailure
	}

	var decls []declaredClass
	collectClasses(root, src, &decls)
	return decls, nil
}

// collectClasses walks the tree gathering every class declaration,
// including nested ones.
func collectClasses(node *sitter.Node, src []byte, out *[]declaredClass) {
	if node.Type() == "class_declaration" {
		*out = append(*out, readClassDecl(node, src))
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectClasses(node.NamedChild(i), src, out)
	}
}

func readClassDecl(node *sitter.Node, src []byte) declaredClass {
	decl := declaredClass{}

	if name := node.ChildByFieldName("name"); name != nil {
		decl.name = name.Content(src)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "modifiers" && strings.Contains(child.Content(src), "abstract") {
			decl.isAbstract = true
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return decl
	}

	// Only direct members count; nested classes carry their own.
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "method_declaration":
			m := declaredMethod{}
			if name := member.ChildByFieldName("name"); name != nil {
				m.name = name.Content(src)
			}
			if params := member.ChildByFieldName("parameters"); params != nil {
				m.parameterCount = int(params.NamedChildCount())
			}
			if m.name != "" {
				decl.methods = append(decl.methods, m)
			}
		case "field_declaration":
			decl.fieldCount++
		}
	}

	return decl
}

// extractClass locates a declared class in the raw text and builds its
// unit with nested method units and class metrics. Returns nil when the
// header cannot be matched, the block is unterminated, or the class
// exceeds the size bound.
func (s *Slicer) extractClass(decl declaredClass, source, filePath string) *models.SourceUnit {
	code, start, end, ok := extractClassByName(source, decl.name)
	if !ok {
		return nil
	}

	loc := CountLOC(code)
	if loc > s.cfg.MaxClassLOC {
		// Oversized classes are dropped entirely; their methods are not
		// promoted to standalone units.
		return nil
	}

	var methods []*models.SourceUnit
	for _, m := range decl.methods {
		unit := s.extractMethod(m, code, filePath, decl.name, start)
		if unit != nil {
			methods = append(methods, unit)
		}
	}

	metrics := models.Metrics{
		LOC:         loc,
		MethodCount: len(decl.methods),
		FieldCount:  decl.fieldCount,
		IsAbstract:  decl.isAbstract,
	}
	if len(decl.methods) > 0 {
		metrics.GetterSetterRatio = float64(countTrivialAccessors(methods)) / float64(len(decl.methods))
	}

	unit := &models.SourceUnit{
		Kind:        models.UnitClass,
		Name:        decl.name,
		Code:        code,
		FilePath:    filePath,
		Metrics:     metrics,
		Methods:     methods,
		StartOffset: start,
		EndOffset:   end,
	}
	unit.HashContent()
	return unit
}

// extractMethod locates a declared method inside its class text. baseOffset
// translates class-relative positions to file positions.
func (s *Slicer) extractMethod(decl declaredMethod, classCode, filePath, parentClass string, baseOffset int) *models.SourceUnit {
	code, start, end, ok := extractMethodByName(classCode, decl.name)
	if !ok {
		return nil
	}

	metrics := methodMetrics(code, decl.parameterCount)
	if metrics.LOC < s.cfg.MinMethodLOC {
		return nil
	}

	unit := &models.SourceUnit{
		Kind:        models.UnitMethod,
		Name:        decl.name,
		Code:        code,
		FilePath:    filePath,
		ParentClass: parentClass,
		Metrics:     metrics,
		StartOffset: baseOffset + start,
		EndOffset:   baseOffset + end,
	}
	unit.HashContent()
	return unit
}

// extractClassByName finds the class declaration header and extracts its
// full body.
func extractClassByName(source, className string) (code string, start, end int, ok bool) {
	pattern := `(public\s+|private\s+|protected\s+)?(abstract\s+|final\s+)?class\s+` +
		regexp.QuoteMeta(className) +
		`\s*(<[^>]+>)?(\s+extends\s+\w+)?(\s+implements\s+[\w,\s]+)?\s*\{`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", 0, 0, false
	}

	loc := re.FindStringIndex(source)
	if loc == nil {
		return "", 0, 0, false
	}

	code, end, blockErr := ExtractBlock(source, loc[0])
	if blockErr != nil {
		return "", 0, 0, false
	}
	return code, loc[0], end, true
}

// extractMethodByName finds the method declaration header and extracts its
// full body.
func extractMethodByName(source, methodName string) (code string, start, end int, ok bool) {
	pattern := `(public|private|protected)?\s+(static\s+)?[\w<>\[\]]+\s+` +
		regexp.QuoteMeta(methodName) +
		`\s*\([^)]*\)\s*(throws\s+[\w,\s]+)?\s*\{`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", 0, 0, false
	}

	loc := re.FindStringIndex(source)
	if loc == nil {
		return "", 0, 0, false
	}

	code, end, blockErr := ExtractBlock(source, loc[0])
	if blockErr != nil {
		return "", 0, 0, false
	}
	return code, loc[0], end, true
}

// extractClassesFallback re-scans the whole text with a class declaration
// pattern when the structural parse failed.
func (s *Slicer) extractClassesFallback(source, filePath string) []*models.SourceUnit {
	classes := []*models.SourceUnit{}

	for _, match := range fallbackClassRe.FindAllStringSubmatchIndex(source, -1) {
		name := source[match[6]:match[7]]
		start := match[0]

		code, end, err := ExtractBlock(source, start)
		if err != nil {
			continue
		}

		loc := CountLOC(code)
		if loc > s.cfg.MaxClassLOC {
			continue
		}

		methods := s.extractMethodsFallback(code, filePath, start)

		metrics := models.Metrics{LOC: loc, MethodCount: len(methods)}
		unit := &models.SourceUnit{
			Kind:        models.UnitClass,
			Name:        name,
			Code:        code,
			FilePath:    filePath,
			Metrics:     metrics,
			Methods:     methods,
			StartOffset: start,
			EndOffset:   end,
		}
		unit.HashContent()
		classes = append(classes, unit)
	}

	return classes
}

// extractMethodsFallback scans text with a method declaration pattern.
// Candidate names that are exactly get, set, or is are bare accessor
// stubs, not real getters, and are skipped. baseOffset translates match
// positions when text is a class body rather than the whole file.
func (s *Slicer) extractMethodsFallback(source, filePath string, baseOffset int) []*models.SourceUnit {
	methods := []*models.SourceUnit{}

	for _, match := range fallbackMethodRe.FindAllStringSubmatchIndex(source, -1) {
		name := source[match[6]:match[7]]
		if name == "get" || name == "set" || name == "is" {
			continue
		}

		start := match[0]
		code, end, err := ExtractBlock(source, start)
		if err != nil {
			continue
		}

		loc := CountLOC(code)
		if loc < s.cfg.MinMethodLOC {
			continue
		}

		unit := &models.SourceUnit{
			Kind:        models.UnitMethod,
			Name:        name,
			Code:        code,
			FilePath:    filePath,
			Metrics:     models.Metrics{LOC: loc},
			StartOffset: baseOffset + start,
			EndOffset:   baseOffset + end,
		}
		unit.HashContent()
		methods = append(methods, unit)
	}

	return methods
}
