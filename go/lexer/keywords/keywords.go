// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keywords is the catalogue of words the script language treats
// specially: active structural keywords, words reserved for future use or
// commonly borrowed from other languages, and built-in keyword functions.
//
// Keywords are case-sensitive.
package keywords

import "sort"

// KeywordCategory represents the different categories of script keywords.
type KeywordCategory int

const (
	// ActiveKeyword - structural keyword with its own token (let, if, fn, ...)
	ActiveKeyword KeywordCategory = iota

	// ReservedKeyword - not used by the language but cannot be an identifier
	ReservedKeyword

	// FunctionKeyword - built-in function name that cannot be redefined
	// (print, eval, ...). Lexed as a reserved symbol so the parser can
	// recognize the call.
	FunctionKeyword
)

// Keyword function names.
const (
	KeywordPrint     = "print"
	KeywordDebug     = "debug"
	KeywordTypeOf    = "type_of"
	KeywordEval      = "eval"
	KeywordFnPtr     = "Fn"
	KeywordFnPtrCall = "call"
	KeywordFnCurry   = "curry"
	KeywordThis      = "this"
	KeywordIsDefVar  = "is_def_var"
	KeywordIsDefFn   = "is_def_fn"
)

// KeywordInfo describes a single keyword.
type KeywordInfo struct {
	Name     string
	Category KeywordCategory
}

// Keywords is the complete keyword table.
var Keywords = []KeywordInfo{
	{"as", ActiveKeyword},
	{"break", ActiveKeyword},
	{"catch", ActiveKeyword},
	{"const", ActiveKeyword},
	{"continue", ActiveKeyword},
	{"do", ActiveKeyword},
	{"else", ActiveKeyword},
	{"export", ActiveKeyword},
	{"false", ActiveKeyword},
	{"fn", ActiveKeyword},
	{"for", ActiveKeyword},
	{"if", ActiveKeyword},
	{"import", ActiveKeyword},
	{"in", ActiveKeyword},
	{"let", ActiveKeyword},
	{"loop", ActiveKeyword},
	{"null", ActiveKeyword},
	{"private", ActiveKeyword},
	{"return", ActiveKeyword},
	{"switch", ActiveKeyword},
	{"throw", ActiveKeyword},
	{"true", ActiveKeyword},
	{"try", ActiveKeyword},
	{"until", ActiveKeyword},
	{"while", ActiveKeyword},

	{"async", ReservedKeyword},
	{"await", ReservedKeyword},
	{"begin", ReservedKeyword},
	{"case", ReservedKeyword},
	{"default", ReservedKeyword},
	{"each", ReservedKeyword},
	{"end", ReservedKeyword},
	{"exit", ReservedKeyword},
	{"go", ReservedKeyword},
	{"goto", ReservedKeyword},
	{"match", ReservedKeyword},
	{"module", ReservedKeyword},
	{"new", ReservedKeyword},
	{"nil", ReservedKeyword},
	{"package", ReservedKeyword},
	{"public", ReservedKeyword},
	{"shared", ReservedKeyword},
	{"spawn", ReservedKeyword},
	{"static", ReservedKeyword},
	{"sync", ReservedKeyword},
	{"then", ReservedKeyword},
	{"thread", ReservedKeyword},
	{"unless", ReservedKeyword},
	{"use", ReservedKeyword},
	{"var", ReservedKeyword},
	{"void", ReservedKeyword},
	{"with", ReservedKeyword},
	{"yield", ReservedKeyword},

	{KeywordPrint, FunctionKeyword},
	{KeywordDebug, FunctionKeyword},
	{KeywordTypeOf, FunctionKeyword},
	{KeywordEval, FunctionKeyword},
	{KeywordFnPtr, FunctionKeyword},
	{KeywordFnPtrCall, FunctionKeyword},
	{KeywordFnCurry, FunctionKeyword},
	{KeywordThis, FunctionKeyword},
	{KeywordIsDefVar, FunctionKeyword},
	{KeywordIsDefFn, FunctionKeyword},
}

// keywordLookupMap provides O(1) keyword lookup by name.
var keywordLookupMap map[string]*KeywordInfo

func init() {
	keywordLookupMap = make(map[string]*KeywordInfo, len(Keywords))
	for i := range Keywords {
		keywordLookupMap[Keywords[i].Name] = &Keywords[i]
	}
}

// LookupKeyword returns the keyword info for name, or nil if name is not a
// keyword.
func LookupKeyword(name string) *KeywordInfo {
	return keywordLookupMap[name]
}

// IsKeyword returns true if name is in the keyword table.
func IsKeyword(name string) bool {
	return LookupKeyword(name) != nil
}

// IsActiveKeyword returns true if name is a structural keyword.
func IsActiveKeyword(name string) bool {
	kw := LookupKeyword(name)
	return kw != nil && kw.Category == ActiveKeyword
}

// IsReservedKeyword returns true if name is reserved for future use.
func IsReservedKeyword(name string) bool {
	kw := LookupKeyword(name)
	return kw != nil && kw.Category == ReservedKeyword
}

// IsKeywordFunction returns true if name is a built-in keyword function.
func IsKeywordFunction(name string) bool {
	kw := LookupKeyword(name)
	return kw != nil && kw.Category == FunctionKeyword
}

// GetKeywordNames returns a sorted slice of all keyword names.
func GetKeywordNames() []string {
	names := make([]string, len(Keywords))
	for i, kw := range Keywords {
		names[i] = kw.Name
	}
	sort.Strings(names)
	return names
}

// GetKeywordsByCategory returns all keywords in a specific category.
func GetKeywordsByCategory(category KeywordCategory) []KeywordInfo {
	var result []KeywordInfo
	for _, kw := range Keywords {
		if kw.Category == category {
			result = append(result, kw)
		}
	}
	return result
}

// String returns the string representation of a KeywordCategory.
func (kc KeywordCategory) String() string {
	switch kc {
	case ActiveKeyword:
		return "ACTIVE_KEYWORD"
	case ReservedKeyword:
		return "RESERVED_KEYWORD"
	case FunctionKeyword:
		return "FUNCTION_KEYWORD"
	default:
		return "UNKNOWN_KEYWORD_CATEGORY"
	}
}
