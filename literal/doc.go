// Package literal implements the typed values of SDL documents and their
// literal text.
//
// A Value is one of Null, Bool, Int32, Int64, Float32, Float64, Decimal,
// String, Char, Binary, Date, DateTime or Duration. Parse reads a literal
// from text and Format writes one; for every valid Value v,
// Parse(Format(v, true)) is equal to v.
//
//	v, err := literal.Parse("5.5BD")    // Decimal 5.5
//	v, err = literal.Parse("12:30:00")   // Duration
//	fmt.Println(literal.Int64(5))        // 5L
//
// Times of day and durations share one textual form. ParseTimeSpec reads
// it without deciding; TimeSpec.On makes a DateTime of it and
// TimeSpec.Duration a Duration.
package literal
