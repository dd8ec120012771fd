// SPDX-License-Identifier: MIT
package movielens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cinegraph/movielens"
)

const moviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children
2,Jumanji (1995),Adventure|Children|Fantasy
5,"American President, The (1995)",Comedy|Drama|Romance
10,Untitled,(no genres listed)
`

// Support per pair:
//
//	(1,2)  same-rating 3, shared 3
//	(1,5)  same-rating 0, shared 3
//	(2,5)  same-rating 0, shared 3
//	(1,10) same-rating 1, shared 1
//	(2,10) same-rating 1, shared 1
const ratingsCSV = `userId,movieId,rating,timestamp
1,1,4.0,964982703
1,2,4.0,964981247
1,5,3.0,964982224
1,10,4.0,964983815
2,1,4.0,964982931
2,2,4.0,964982400
2,5,3.0,964980868
3,1,4.0,964982176
3,2,4.0,964984041
3,5,5.0,964984100
3,99,2.5,964984200
`

func fixture(t *testing.T) *movielens.Dataset {
	t.Helper()
	ds, err := movielens.LoadMovies(strings.NewReader(moviesCSV))
	require.NoError(t, err)
	require.NoError(t, movielens.LoadRatings(strings.NewReader(ratingsCSV), ds))

	return ds
}
