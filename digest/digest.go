// This file is part of Falcongfx.
//
// Falcongfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falcongfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falcongfx.  If not, see <https://www.gnu.org/licenses/>.


// Package digest fingerprints the output of the display pipeline. The digest
// of each frame is chained with the digest of the previous frame so that the
// final value identifies the entire sequence of frames.
//
// Digests are used to compare two runs of the pipeline. For example, the
// planar and accelerated renderers should produce the same sequence of frames
// for the same sequence of drawing operations.
package digest

// Digest implementations calculate a hash of the frames they have seen.
type Digest interface {
	Hash() string
	ResetDigest()
}
