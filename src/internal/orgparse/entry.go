package orgparse

import (
	"fmt"
	"strings"
)

// ParseEntry parses a single candidate of a package line:
//
//	name [{[distro][:[release][:tag[,tag...]]]}]
//
// Empty distro and release fields are treated as absent. An empty tag list
// after the second colon is kept as a tag requirement that nothing satisfies.
func ParseEntry(text string) (Candidate, error) {
	p := &entryParser{src: strings.TrimSpace(text)}
	c, err := p.entry()
	if err != nil {
		return Candidate{}, &MalformedEntryError{Entry: text, Reason: err.Error()}
	}
	return c, nil
}

type entryParser struct {
	src string
	pos int
}

func (p *entryParser) entry() (Candidate, error) {
	var c Candidate
	if c.Name = p.token(isNameByte); c.Name == "" {
		return c, p.unexpected("package name")
	}
	p.skipSpace()
	if p.eof() {
		return c, nil
	}
	if !p.consume('{') {
		return c, p.unexpected("'{'")
	}
	if err := p.annotation(&c); err != nil {
		return c, err
	}
	p.skipSpace()
	if !p.eof() {
		return c, p.unexpected("end of entry")
	}
	return c, nil
}

func (p *entryParser) annotation(c *Candidate) error {
	p.skipSpace()
	c.Platform = p.token(isWordByte)
	p.skipSpace()
	if p.consume(':') {
		p.skipSpace()
		c.Release = p.token(isReleaseByte)
		p.skipSpace()
		if p.consume(':') {
			tags, err := p.tagList()
			if err != nil {
				return err
			}
			c.Tags, c.Tagged = tags, true
		}
	}
	p.skipSpace()
	if !p.consume('}') {
		return p.unexpected("'}'")
	}
	return nil
}

func (p *entryParser) tagList() ([]string, error) {
	tags := []string{}
	p.skipSpace()
	if p.eof() || p.src[p.pos] == '}' {
		return tags, nil
	}
	for {
		tag := p.token(isTagByte)
		if tag == "" {
			return nil, p.unexpected("tag")
		}
		tags = append(tags, tag)
		p.skipSpace()
		if !p.consume(',') {
			return tags, nil
		}
		p.skipSpace()
	}
}

func (p *entryParser) token(valid func(byte) bool) string {
	start := p.pos
	for p.pos < len(p.src) && valid(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *entryParser) consume(b byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *entryParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *entryParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *entryParser) unexpected(want string) error {
	if p.eof() {
		return fmt.Errorf("expected %s at end of input", want)
	}
	return fmt.Errorf("expected %s at offset %d, found %q", want, p.pos, p.src[p.pos])
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func isNameByte(b byte) bool {
	return isWordByte(b) || b == '-'
}

func isReleaseByte(b byte) bool {
	return isWordByte(b) || b == '.'
}

func isTagByte(b byte) bool {
	return isNameByte(b)
}
