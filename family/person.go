// Package family holds person records linked to their parents.
package family

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrSelfParent = errors.New("a person cannot be their own parent")

// Person is a named entry in a family tree. The child count is kept in step
// with the parent links of the people pointing at this one.
type Person struct {
	name       string
	birthYear  int
	birthMonth int
	birthDay   int
	mother     *Person
	father     *Person
	children   int
}

func New(name string, year, month, day int) *Person {
	return &Person{
		name:       name,
		birthYear:  year,
		birthMonth: month,
		birthDay:   day,
	}
}

func (p *Person) Name() string    { return p.name }
func (p *Person) BirthYear() int  { return p.birthYear }
func (p *Person) BirthMonth() int { return p.birthMonth }
func (p *Person) BirthDay() int   { return p.birthDay }
func (p *Person) Mother() *Person { return p.mother }
func (p *Person) Father() *Person { return p.father }
func (p *Person) NumChildren() int {
	return p.children
}

// SetMother links p to mother. nil clears the link.
func (p *Person) SetMother(mother *Person) error {
	return p.setParent(&p.mother, mother)
}

// SetFather links p to father. nil clears the link.
func (p *Person) SetFather(father *Person) error {
	return p.setParent(&p.father, father)
}

func (p *Person) setParent(link **Person, parent *Person) error {
	if parent == p {
		return ErrSelfParent
	}
	if *link == parent {
		return nil
	}
	if *link != nil {
		(*link).children--
	}
	if parent != nil {
		parent.children++
	}
	*link = parent
	return nil
}

func (p *Person) String() string {
	return fmt.Sprintf("%s (%04d-%02d-%02d)", p.name, p.birthYear, p.birthMonth, p.birthDay)
}

// Validate recounts the children of everyone in people from the parent links
// inside the same set and reports every stored count that disagrees.
func Validate(people ...*Person) error {
	counts := make(map[*Person]int, len(people))
	for _, p := range people {
		if p.mother != nil {
			counts[p.mother]++
		}
		if p.father != nil {
			counts[p.father]++
		}
	}
	var err error
	for _, p := range people {
		if got := counts[p]; got != p.children {
			err = multierr.Append(err, fmt.Errorf("family: %s has %d children recorded, %d linked", p.name, p.children, got))
		}
	}
	return err
}
