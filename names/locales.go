// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names

import "golang.org/x/text/language"

// English is the default locale; it is registered first and hence is
// the fallback for unmatched tags.
var English = New(language.English,
	[12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	[12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	[7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	[7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
)

// German month and weekday names.
var German = New(language.German,
	[12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	[12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	[7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
	[7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
)

// French month and weekday names.
var French = New(language.French,
	[12]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	[12]string{"janv", "févr", "mars", "avr", "mai", "juin",
		"juil", "août", "sept", "oct", "nov", "déc"},
	[7]string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"},
	[7]string{"lun", "mar", "mer", "jeu", "ven", "sam", "dim"},
)

// Spanish month and weekday names.
var Spanish = New(language.Spanish,
	[12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	[12]string{"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic"},
	[7]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"},
	[7]string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"},
)

func init() {
	Register(English)
	Register(German)
	Register(French)
	Register(Spanish)
}
