package model

// DateLayout is the canonical wire format for calendar dates. Every date
// handled by the reporting layer is a lexicographically sortable
// YYYY-MM-DD string, so month and year filters reduce to prefix matches.
const DateLayout = "2006-01-02"

// MonthLayout is the prefix form of DateLayout used by monthly reports.
const MonthLayout = "2006-01"
