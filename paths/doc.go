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

// Package paths contains functions to prepare paths to falcongfx resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory, creating any missing directories on the way.
// For example, the following returns the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a directory named ".falcongfx" exists in the current directory then that
// is used as the base path. Otherwise the "falcongfx" directory in the user's
// config directory is used, as returned by os.UserConfigDir().
//
// UniqueFilename() is used to name screenshots and frame digests.
package paths
