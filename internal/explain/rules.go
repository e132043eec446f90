package explain

import "strings"

// Rule pairs a substring pattern with a fixed explanatory sentence.
// Patterns are matched against the lower-cased prompt; the table is
// ordered, and order decides both display order and which of two
// duplicate sentences survives deduplication.
type Rule struct {
	Pattern string
	Text    string
}

// rules is the single-condition tier. Grouped by topic: numeric
// conversion, Math rounding, string case/search, array mutation,
// array non-mutation, equality and logical operators, loops.
var rules = []Rule{
	// Numeric conversion.
	{"number(", "Number() converts its argument to a numeric value, producing NaN when the text is not a valid number."},
	{"parseint", "parseInt() reads leading digits from a string and ignores everything after the first non-digit character."},
	{"parsefloat", "parseFloat() reads a decimal number from the start of a string, including a fractional part."},
	{"tofixed", ".toFixed() rounds to a fixed number of decimal places and returns a string, not a number."},
	{"isnan", "isNaN() checks whether a value fails to convert to a number."},

	// Math rounding and helpers.
	{"math.floor", "Math.floor() always rounds down to the nearest whole number, even for values like 4.9."},
	{"math.ceil", "Math.ceil() always rounds up to the nearest whole number, even for values like 4.1."},
	{"math.round", "Math.round() rounds to the nearest whole number; halves like .5 round up."},
	{"math.trunc", "Math.trunc() simply cuts off the fractional part without rounding."},
	{"math.abs", "Math.abs() returns the distance from zero, so negative inputs come back positive."},
	{"math.pow", "Math.pow(base, exponent) raises the first argument to the power of the second."},
	{"math.sqrt", "Math.sqrt() returns the square root of its argument."},
	{"math.max", "Math.max() returns the largest of its arguments."},
	{"math.min", "Math.min() returns the smallest of its arguments."},

	// String case and search.
	{"touppercase", ".toUpperCase() returns a new string in capital letters; the original string is unchanged."},
	{"tolowercase", ".toLowerCase() returns a new string in small letters; the original string is unchanged."},
	{"trim(", ".trim() removes whitespace from both ends of a string and returns the result."},
	{"includes", ".includes() returns true or false depending on whether the value is found."},
	{"indexof", ".indexOf() returns the position of the first match, or -1 when nothing is found."},
	{"charat", ".charAt() returns the single character at the given position, counting from 0."},
	{"split", ".split() breaks a string into an array of pieces at each separator."},
	{"replace", ".replace() returns a new string with the first match swapped out; the original is untouched."},
	{"repeat", ".repeat() returns the string glued to itself the given number of times."},
	{".length", ".length counts the number of characters in a string or elements in an array."},

	// Array mutation methods.
	{".push", ".push() adds to the end of the array, changes the array in place, and returns the new length."},
	{".pop", ".pop() removes the last element, changes the array in place, and returns the removed element."},
	{".shift", ".shift() removes the first element and moves everything else forward by one position."},
	{".unshift", ".unshift() inserts at the front of the array and returns the new length."},
	{".splice", ".splice() adds or removes elements in place and returns what was removed."},
	{".sort", ".sort() reorders the array in place; without a compare function it sorts as text."},
	{".reverse", ".reverse() flips the order of the array in place."},

	// Array non-mutation methods.
	{".map(", ".map() builds a brand-new array by applying the function to every element; the original array is not changed."},
	{".filter", ".filter() builds a new array holding only the elements for which the function returns true."},
	{".reduce", ".reduce() combines all elements into a single value by applying the function step by step."},
	{".concat", ".concat() joins arrays into a new one and leaves the originals alone."},
	{".slice(", ".slice() copies a section into a new array or string without touching the original."},
	{".join", ".join() glues array elements into one string with the separator between them."},

	// Equality and logical operators.
	{"===", "=== compares both value and type, so no type conversion happens before the check."},
	{"!==", "!== is true when the operands differ in value or in type."},
	{"==", "== converts the operands to a common type before comparing, which can make different-looking values equal."},
	{"&&", "&& is only true when both sides are true; it stops early at the first false side."},
	{"||", "|| is true when at least one side is true; it stops early at the first true side."},
	{"typeof", "typeof reports the type of a value as a string, like \"number\" or \"string\"."},

	// Loops.
	{"for (", "A for loop repeats its body once per step of the counter, checking the condition before every pass."},
	{"for(", "A for loop repeats its body once per step of the counter, checking the condition before every pass."},
	{"while", "A while loop keeps running as long as its condition stays true, checking before each pass."},
	{"break", "break leaves the loop immediately, skipping any remaining passes."},
	{"continue", "continue skips the rest of the current pass and jumps to the next one."},
}

// compoundRule fires only when two conditions hold at once, adding a
// hint more specific than the single-pattern tier can give.
type compoundRule struct {
	when func(prompt string) bool
	text string
}

var compoundRules = []compoundRule{
	{
		// A Math call applied to a literal expression.
		when: func(p string) bool {
			return strings.Contains(p, "math.") && containsDigit(p)
		},
		text: "Evaluate the inner expression first, then apply the Math function to its result.",
	},
	{
		// console.log of a string glued to a number.
		when: func(p string) bool {
			return strings.Contains(p, "console.log") &&
				(strings.Contains(p, "\" +") || strings.Contains(p, "+ \"") ||
					strings.Contains(p, "' +") || strings.Contains(p, "+ '"))
		},
		text: "When a string is added to a number, the number is converted to text and the two are glued together.",
	},
	{
		// Both comparison styles in one prompt.
		when: func(p string) bool {
			return strings.Contains(p, "===") && strings.Contains(p, "\"")
		},
		text: "A number is never strictly equal to a string, even when they look the same.",
	},
	{
		// Asking what push returns, not what it does.
		when: func(p string) bool {
			return strings.Contains(p, ".push") && strings.Contains(p, "return")
		},
		text: "Watch the return value: .push() hands back the new length, not the array itself.",
	},
	{
		// map with an arrow callback.
		when: func(p string) bool {
			return strings.Contains(p, ".map(") && strings.Contains(p, "=>")
		},
		text: "The arrow function runs once for every element, and each return value becomes the element at the same position in the new array.",
	},
	{
		// Loop driven by array length.
		when: func(p string) bool {
			return (strings.Contains(p, "for (") || strings.Contains(p, "for(")) &&
				strings.Contains(p, ".length")
		},
		text: "With i starting at 0 and the condition i < length, the loop visits every index exactly once.",
	},
	{
		// The typeof null quirk.
		when: func(p string) bool {
			return strings.Contains(p, "typeof") && strings.Contains(p, "null")
		},
		text: "typeof null reports \"object\", a long-standing quirk of the language.",
	},
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
