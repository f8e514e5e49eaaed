package model

import (
	"strings"

	"github.com/EsotericSoftware/spine-cpp-lite-codegen/parser"
)

// Role is what a function becomes on its object.
type Role int

const (
	RoleMethod Role = iota
	RoleGetter
	RoleSetter
	RoleCountGetter
)

func (r Role) String() string {
	switch r {
	case RoleGetter:
		return "getter"
	case RoleSetter:
		return "setter"
	case RoleCountGetter:
		return "count-getter"
	default:
		return "method"
	}
}

const (
	getInfix   = "_get_"
	setInfix   = "_set_"
	isInfix    = "_is_"
	countInfix = "_get_num_"
)

// ClassifyRole is the single place where naming conventions decide a role.
// Getters and setters must take the receiver first; anything else is a
// method. A count getter is only one when o also has the array getter it
// counts.
func ClassifyRole(o *Object, fn parser.Function) Role {
	name := fn.Name

	if strings.Contains(name, countInfix) && o.Has(strings.Replace(name, countInfix, getInfix, 1)) {
		return RoleCountGetter
	}

	onReceiver := len(fn.Params) > 0 && fn.Params[0].Type == o.Name

	switch n := len(fn.Params); {
	case (strings.Contains(name, getInfix) || strings.Contains(name, isInfix)) && n == 1 && onReceiver:
		return RoleGetter
	case strings.Contains(name, setInfix) && n == 2 && onReceiver:
		return RoleSetter
	default:
		return RoleMethod
	}
}

// CountFunction returns the name of the function holding the element count
// of fn's result when fn is an array getter of o.
func CountFunction(o *Object, fn parser.Function) (string, bool) {
	if !strings.Contains(fn.Name, getInfix) {
		return "", false
	}

	count := strings.Replace(fn.Name, getInfix, countInfix, 1)
	if count == fn.Name || !o.Has(count) {
		return "", false
	}

	return count, true
}

// Property is a getter paired with the setter sharing its base name.
type Property struct {
	Getter parser.Function
	Setter parser.Function
}

// Members is the emission plan for one object.
type Members struct {
	Getters    []parser.Function
	Properties []Property
	// Methods holds plain methods followed by demoted setters.
	Methods []parser.Function
	Demoted []string
	Counts  []string
}

// Classify sorts o's functions into lone getters, get/set properties and
// methods. A setter without a matching "_get_" or "_is_" getter is demoted
// to a method.
func Classify(o *Object) Members {
	var (
		m       Members
		getters []parser.Function
		setters []parser.Function
	)

	for _, fn := range o.Functions {
		switch ClassifyRole(o, fn) {
		case RoleCountGetter:
			m.Counts = append(m.Counts, fn.Name)
		case RoleGetter:
			getters = append(getters, fn)
		case RoleSetter:
			setters = append(setters, fn)
		default:
			m.Methods = append(m.Methods, fn)
		}
	}

	var demoted []parser.Function

	for _, setter := range setters {
		i := indexOf(getters, strings.Replace(setter.Name, setInfix, getInfix, 1))
		if i < 0 {
			i = indexOf(getters, strings.Replace(setter.Name, setInfix, isInfix, 1))
		}

		if i < 0 {
			demoted = append(demoted, setter)
			m.Demoted = append(m.Demoted, setter.Name)
			continue
		}

		m.Properties = append(m.Properties, Property{Getter: getters[i], Setter: setter})
		getters = append(getters[:i], getters[i+1:]...)
	}

	m.Getters = getters
	m.Methods = append(m.Methods, demoted...)

	return m
}

func indexOf(fns []parser.Function, name string) int {
	for i, fn := range fns {
		if fn.Name == name {
			return i
		}
	}

	return -1
}
