package language

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Element and attribute names of iso_639.xml
const (
	elemEntries = "iso_639_entries"
	elemEntry   = "iso_639_entry"

	attrName   = "name"
	attrCode1  = "iso_639_1_code"
	attrCode2B = "iso_639_2B_code"
	attrCode2T = "iso_639_2T_code"

	// English names are already in their own language
	codeEnglish = "en"
)

type parserState int

const (
	stateStart parserState = iota
	stateInEntries
	stateInEntry
	stateInUnknown
)

func (s parserState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateInEntries:
		return "in-entries"
	case stateInEntry:
		return "in-entry"
	case stateInUnknown:
		return "in-unknown"
	default:
		return "invalid"
	}
}

// Variant replaces the entry of a base code with one entry per regional
// code. An empty Name keeps the name of the replaced entry.
type Variant struct {
	Name  string
	Codes []string
}

// VariantsFromCodes builds a variant table keeping entry names, as read
// from the languages.variants configuration. A nil table keeps the
// defaults.
func VariantsFromCodes(codes map[string][]string) map[string]Variant {
	if codes == nil {
		return nil
	}
	variants := make(map[string]Variant, len(codes))
	for base, regional := range codes {
		variants[base] = Variant{Codes: regional}
	}
	return variants
}

// DefaultVariants lists base codes that have no usable translation of
// their own and are offered per region instead.
var DefaultVariants = map[string]Variant{
	"zh": {Name: "Chinese", Codes: []string{"zh_CN", "zh_TW", "zh_HK"}},
}

// Parser streams an ISO-639 document into a Store. Elements it does not
// know are skipped together with everything they contain.
type Parser struct {
	store      Store
	translator Translator
	variants   map[string]Variant

	stack []parserState
	added int
}

// NewParser creates a parser feeding store. translator may be nil, in
// which case names are stored untranslated.
func NewParser(store Store, translator Translator) *Parser {
	return &Parser{
		store:      store,
		translator: translator,
		variants:   DefaultVariants,
		stack:      []parserState{stateStart},
	}
}

// SetVariants replaces the regional variant table
func (p *Parser) SetVariants(variants map[string]Variant) {
	p.variants = variants
}

// Added returns the number of languages stored so far
func (p *Parser) Added() int {
	return p.added
}

// Parse reads the whole document. Syntax errors abort the parse; languages
// added before the error stay in the store.
func (p *Parser) Parse(ctx context.Context, r io.Reader) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to parse ISO-639 data: %w", err)
		}
		p.handle(tok)
	}
}

func (p *Parser) handle(tok xml.Token) {
	switch t := tok.(type) {
	case xml.StartElement:
		p.startElement(t)
	case xml.EndElement:
		p.endElement()
	}
}

func (p *Parser) current() parserState {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) startElement(e xml.StartElement) {
	state := p.current()
	switch {
	case state == stateStart && e.Name.Local == elemEntries:
		p.stack = append(p.stack, stateInEntries)
	// a document may also hold a single entry as its root
	case (state == stateStart || state == stateInEntries) && e.Name.Local == elemEntry:
		p.stack = append(p.stack, stateInEntry)
		p.entry(e.Attr)
	default:
		p.stack = append(p.stack, stateInUnknown)
	}
}

func (p *Parser) endElement() {
	// the decoder rejects unbalanced end tags, so the stack never underflows
	if len(p.stack) > 1 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

func (p *Parser) entry(attrs []xml.Attr) {
	var name, code string
	for _, a := range attrs {
		switch a.Name.Local {
		case attrName:
			name = a.Value
		case attrCode2B, attrCode2T:
			if code == "" {
				code = a.Value
			}
		case attrCode1:
			code = a.Value
		}
	}

	if v, ok := p.variants[code]; ok {
		if v.Name != "" {
			name = v.Name
		}
		for _, c := range v.Codes {
			p.add(name, c)
		}
		return
	}
	p.add(name, code)
}

func (p *Parser) add(name, code string) {
	if name == "" || code == "" {
		return
	}

	if code != codeEnglish && p.translator != nil {
		if s, ok := p.translator.Translate(name, code); ok {
			name = s
		}
	}

	// translations may list several names; use the first one
	if i := strings.IndexByte(name, ';'); i >= 0 {
		name = name[:i]
	}

	p.store.Add(norm.NFC.String(name), code)
	p.added++
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	log.Printf("Language: decoding ISO-639 data from %s", charset)
	return transform.NewReader(input, enc.NewDecoder()), nil
}
