/*
 * parse_test.go, part of govasp.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Govasp is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package cli

import "testing"

func TestParseIndexList(Te *testing.T) {
	got, err := parseIndexList("1,3,5")
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		Te.Errorf("got %v, want [1 3 5]", got)
	}
	if _, err := parseIndexList("1, 2"); err != nil {
		Te.Errorf("spaces after commas should be tolerated: %v", err)
	}
	for _, bad := range []string{"", "a", "1,b", "0", "-2", "1,,2"} {
		if _, err := parseIndexList(bad); err == nil {
			Te.Errorf("expected an error for %q", bad)
		}
	}
}
