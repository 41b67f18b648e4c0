// Package profile holds the draft profile accumulated by the onboarding
// wizard and the operations that update it.
package profile

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/sorra/internal/resume"
)

// Draft is the profile being filled in across the wizard steps. Values are
// passed around by copy; use Snapshot before handing one to code that may
// keep it.
type Draft struct {
	FullName         string
	Bio              string
	JobTitle         string
	Location         string
	Resume           *resume.Handle
	Skills           []string
	JobTypes         []string
	Industries       []string
	SalaryRange      string
	RemotePreference string
}

// Patch is a partial update. Nil fields are not part of the update.
type Patch struct {
	FullName         *string
	Bio              *string
	JobTitle         *string
	Location         *string
	Resume           *resume.Handle
	ClearResume      bool
	Skills           *[]string
	JobTypes         *[]string
	Industries       *[]string
	SalaryRange      *string
	RemotePreference *string
}

// String returns a pointer to s for building patches.
func String(s string) *string { return &s }

// Strings returns a pointer to a copy of v for building patches.
func Strings(v []string) *[]string {
	c := slices.Clone(v)
	if c == nil {
		c = []string{}
	}
	return &c
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p.Fields()) == 0
}

// Fields names the fields carried by the patch, in declaration order.
func (p Patch) Fields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.FullName != nil, "fullName")
	add(p.Bio != nil, "bio")
	add(p.JobTitle != nil, "jobTitle")
	add(p.Location != nil, "location")
	add(p.Resume != nil || p.ClearResume, "resume")
	add(p.Skills != nil, "skills")
	add(p.JobTypes != nil, "jobTypes")
	add(p.Industries != nil, "industries")
	add(p.SalaryRange != nil, "salaryRange")
	add(p.RemotePreference != nil, "remotePreference")
	return fields
}

// Merge returns d with p applied. Fields absent from p are preserved and the
// last write wins for fields present in it, so merging the same patch twice
// has the same effect as merging it once. Set fields are de-duplicated and a
// resume that fails the acceptance policy is ignored.
func (d Draft) Merge(p Patch) Draft {
	out := d.Snapshot()

	if p.FullName != nil {
		out.FullName = *p.FullName
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.JobTitle != nil {
		out.JobTitle = *p.JobTitle
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	switch {
	case p.ClearResume:
		out.Resume = nil
	case p.Resume != nil && resume.Accept(*p.Resume) == nil:
		h := *p.Resume
		out.Resume = &h
	}
	if p.Skills != nil {
		out.Skills = dedupe(*p.Skills)
	}
	if p.JobTypes != nil {
		out.JobTypes = dedupe(*p.JobTypes)
	}
	if p.Industries != nil {
		out.Industries = dedupe(*p.Industries)
	}
	if p.SalaryRange != nil {
		out.SalaryRange = *p.SalaryRange
	}
	if p.RemotePreference != nil {
		out.RemotePreference = *p.RemotePreference
	}

	return out
}

// Snapshot returns a deep copy of d.
func (d Draft) Snapshot() Draft {
	out := d
	out.Skills = slices.Clone(d.Skills)
	out.JobTypes = slices.Clone(d.JobTypes)
	out.Industries = slices.Clone(d.Industries)
	if d.Resume != nil {
		h := *d.Resume
		out.Resume = &h
	}
	return out
}

// HasResume reports whether a resume has been accepted.
func (d Draft) HasResume() bool {
	return d.Resume != nil
}

// SetField identifies one of the ordered unique collections of a Draft.
type SetField int

const (
	Skills SetField = iota
	JobTypes
	Industries
)

func (f SetField) String() string {
	switch f {
	case Skills:
		return "skills"
	case JobTypes:
		return "jobTypes"
	case Industries:
		return "industries"
	default:
		return "unknown"
	}
}

// Set returns a copy of the collection named by f.
func (d Draft) Set(f SetField) []string {
	switch f {
	case Skills:
		return slices.Clone(d.Skills)
	case JobTypes:
		return slices.Clone(d.JobTypes)
	case Industries:
		return slices.Clone(d.Industries)
	}
	return nil
}

// Has reports whether item is in the collection named by f.
func (d Draft) Has(f SetField, item string) bool {
	return slices.Contains(d.Set(f), item)
}

// SetPatch builds a patch replacing the collection named by f.
func SetPatch(f SetField, values []string) Patch {
	switch f {
	case Skills:
		return Patch{Skills: Strings(values)}
	case JobTypes:
		return Patch{JobTypes: Strings(values)}
	case Industries:
		return Patch{Industries: Strings(values)}
	}
	return Patch{}
}

// Toggle builds the patch that toggles item in the collection named by f.
func (d Draft) Toggle(f SetField, item string) Patch {
	return SetPatch(f, ToggleMembership(d.Set(f), item))
}

// Add builds the patch that inserts item into the collection named by f.
func (d Draft) Add(f SetField, item string) Patch {
	return SetPatch(f, Insert(d.Set(f), item))
}

// Drop builds the patch that removes item from the collection named by f.
func (d Draft) Drop(f SetField, item string) Patch {
	return SetPatch(f, Remove(d.Set(f), item))
}

// Initials takes the first character of each whitespace-separated word of
// fullName and upper-cases the result. An empty name yields "".
func Initials(fullName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(fullName) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
