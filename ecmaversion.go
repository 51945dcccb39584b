package regsyntax

import (
	"fmt"
	"strconv"
)

// EcmaVersion selects the edition of the ECMAScript grammar a pattern is
// checked against.
// The zero value means LatestEcmaVersion.
type EcmaVersion int

const (
	EcmaVersion5    EcmaVersion = 5
	EcmaVersion2015 EcmaVersion = 2015
	EcmaVersion2016 EcmaVersion = 2016
	EcmaVersion2017 EcmaVersion = 2017
	EcmaVersion2018 EcmaVersion = 2018
	EcmaVersion2019 EcmaVersion = 2019
	EcmaVersion2020 EcmaVersion = 2020
	EcmaVersion2021 EcmaVersion = 2021
	EcmaVersion2022 EcmaVersion = 2022
	EcmaVersion2023 EcmaVersion = 2023
	EcmaVersion2024 EcmaVersion = 2024

	LatestEcmaVersion = EcmaVersion2024
)

// EcmaVersions lists every supported edition in ascending order.
var EcmaVersions = []EcmaVersion{
	EcmaVersion5,
	EcmaVersion2015,
	EcmaVersion2016,
	EcmaVersion2017,
	EcmaVersion2018,
	EcmaVersion2019,
	EcmaVersion2020,
	EcmaVersion2021,
	EcmaVersion2022,
	EcmaVersion2023,
	EcmaVersion2024,
}

func (v EcmaVersion) orLatest() EcmaVersion {
	if v == 0 {
		return LatestEcmaVersion
	}
	return v
}

func (v EcmaVersion) String() string {
	return strconv.Itoa(int(v.orLatest()))
}

// ParseEcmaVersion accepts "5", "2015" ... "2024", the edition numbers
// "6" ... "15", and "latest".
func ParseEcmaVersion(s string) (EcmaVersion, error) {
	if s == "latest" || s == "" {
		return LatestEcmaVersion, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid ecmaVersion %q", s)
	}
	// ES6 is ES2015, ES15 is ES2024
	if n >= 6 && n <= 15 {
		n += 2009
	}
	for _, v := range EcmaVersions {
		if int(v) == n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unsupported ecmaVersion %q", s)
}
