// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run confusablegen.go -o confusabledata.go

package discordmd

// confusableFold maps characters confusable with printable ASCII to
// the ASCII they imitate, one character to one character.
// Unicode security data version 16.0.0.
var confusableFold = map[rune]rune{
	0x00df: 'B',
	0x0131: 'i',
	0x0189: 'D',
	0x019a: 'l',
	0x01c0: 'l',
	0x01c3: '!',
	0x0237: 'j',
	0x0251: 'a',
	0x0261: 'g',
	0x0266: 'h',
	0x026a: 'i',
	0x0274: 'N',
	0x028b: 'U',
	0x029c: 'H',
	0x02b9: '\'',
	0x02bb: '\'',
	0x02bc: '\'',
	0x02c8: '\'',
	0x02ca: '\'',
	0x02d0: ':',
	0x02f4: '\'',
	0x037e: ';',
	0x0391: 'A',
	0x0392: 'B',
	0x0395: 'E',
	0x0396: 'Z',
	0x0397: 'H',
	0x0399: 'I',
	0x039a: 'K',
	0x039c: 'M',
	0x039d: 'N',
	0x039f: 'O',
	0x03a1: 'P',
	0x03a4: 'T',
	0x03a5: 'Y',
	0x03a7: 'X',
	0x03b1: 'a',
	0x03b3: 'y',
	0x03b9: 'i',
	0x03bd: 'v',
	0x03bf: 'o',
	0x03c1: 'p',
	0x03c3: 'o',
	0x03c5: 'u',
	0x03c9: 'w',
	0x03f2: 'c',
	0x03f9: 'C',
	0x0405: 'S',
	0x0406: 'I',
	0x0408: 'J',
	0x0410: 'A',
	0x0412: 'B',
	0x0415: 'E',
	0x041a: 'K',
	0x041c: 'M',
	0x041d: 'H',
	0x041e: 'O',
	0x0420: 'P',
	0x0421: 'C',
	0x0422: 'T',
	0x0423: 'Y',
	0x0425: 'X',
	0x042c: 'b',
	0x0430: 'a',
	0x0435: 'e',
	0x043e: 'o',
	0x0440: 'p',
	0x0441: 'c',
	0x0443: 'y',
	0x0445: 'x',
	0x0455: 's',
	0x0456: 'i',
	0x0458: 'j',
	0x0461: 'w',
	0x04ae: 'Y',
	0x04bb: 'h',
	0x04c0: 'l',
	0x0501: 'd',
	0x051b: 'q',
	0x051d: 'w',
	0x0555: 'O',
	0x0570: 'h',
	0x0578: 'n',
	0x057d: 'u',
	0x0581: 'g',
	0x0585: 'o',
	0x05c3: ':',
	0x05d5: 'i',
	0x05d8: 'v',
	0x05df: 'l',
	0x0627: 'l',
	0x0660: '.',
	0x06d4: '-',
	0x0701: '.',
	0x0702: '.',
	0x0703: ':',
	0x0704: ':',
	0x0789: 'j',
	0x07fa: '_',
	0x0966: 'o',
	0x09e6: 'o',
	0x09ea: '8',
	0x0a66: 'o',
	0x0a67: '9',
	0x0ae6: 'o',
	0x0b20: 'O',
	0x0b66: 'o',
	0x0be6: 'o',
	0x0c02: 'o',
	0x0c66: 'o',
	0x0ce6: 'o',
	0x0d02: 'o',
	0x0d20: 'o',
	0x0d66: 'o',
	0x0e50: 'o',
	0x0ed0: 'o',
	0x101d: 'o',
	0x1040: 'o',
	0x10ff: 'o',
	0x13a0: 'D',
	0x13a1: 'R',
	0x13a2: 'T',
	0x13aa: 'A',
	0x13ab: 'J',
	0x13ac: 'E',
	0x13b3: 'W',
	0x13b7: 'M',
	0x13bb: 'H',
	0x13bd: 'Y',
	0x13c0: 'G',
	0x13c2: 'h',
	0x13c3: 'Z',
	0x13cf: 'b',
	0x13d9: 'V',
	0x13da: 'S',
	0x13de: 'L',
	0x13df: 'C',
	0x13e2: 'P',
	0x13e6: 'K',
	0x13f4: 'B',
	0x1472: 'b',
	0x14aa: 'P',
	0x154b: 'd',
	0x1587: 'R',
	0x15af: 'B',
	0x15b4: 'F',
	0x15c5: 'A',
	0x15de: 'D',
	0x15ea: 'D',
	0x15f0: 'M',
	0x15f7: 'B',
	0x161b: '/',
	0x166d: 'X',
	0x166e: 'x',
	0x16b2: 'B',
	0x16b9: 'M',
	0x16c1: 'l',
	0x16cc: '\'',
	0x1735: '/',
	0x1d04: 'c',
	0x1d0f: 'o',
	0x1d1b: 't',
	0x1d20: 'v',
	0x1d21: 'w',
	0x1d22: 'z',
	0x2010: '-',
	0x2011: '-',
	0x2012: '-',
	0x2013: '-',
	0x2018: '\'',
	0x2019: '\'',
	0x201a: ',',
	0x201c: '"',
	0x201d: '"',
	0x2024: '.',
	0x2032: '\'',
	0x2035: '\'',
	0x2039: '<',
	0x203a: '>',
	0x2041: '/',
	0x2044: '/',
	0x2052: '%',
	0x2110: 'I',
	0x2112: 'L',
	0x2113: 'l',
	0x2115: 'N',
	0x2119: 'P',
	0x211a: 'Q',
	0x211b: 'R',
	0x211d: 'R',
	0x2124: 'Z',
	0x212a: 'K',
	0x2130: 'E',
	0x2131: 'F',
	0x2133: 'M',
	0x2134: 'o',
	0x2141: 'G',
	0x2160: 'I',
	0x2164: 'V',
	0x2169: 'X',
	0x216c: 'L',
	0x216d: 'C',
	0x216e: 'D',
	0x216f: 'M',
	0x2170: 'i',
	0x2174: 'v',
	0x2179: 'x',
	0x217c: 'l',
	0x217d: 'c',
	0x217e: 'd',
	0x217f: 'm',
	0x2212: '-',
	0x2215: '/',
	0x2216: '\\',
	0x2223: 'l',
	0x2236: ':',
	0x22c5: '.',
	0x255a: 'L',
	0x2574: '-',
	0x2e28: '(',
	0x2e29: ')',
	0x2e33: '.',
	0x2e40: '=',
	0x30fb: '.',
	0xa4d0: 'B',
	0xa4d1: 'P',
	0xa4d3: 'D',
	0xa4d6: 'G',
	0xa4da: 'C',
	0xa4dc: 'Z',
	0xa4f2: 'S',
	0xa4f3: 'T',
	0xab70: 'd',
	0xab75: 'a',
	0xfe68: '\\',
	0xff01: '!',
	0xff02: '"',
	0xff03: '#',
	0xff04: '$',
	0xff05: '%',
	0xff06: '&',
	0xff07: '\'',
	0xff08: '(',
	0xff09: ')',
	0xff0a: '*',
	0xff0b: '+',
	0xff0c: ',',
	0xff0d: '-',
	0xff0e: '.',
	0xff0f: '/',
	0xff10: '0',
	0xff11: '1',
	0xff12: '2',
	0xff13: '3',
	0xff14: '4',
	0xff15: '5',
	0xff16: '6',
	0xff17: '7',
	0xff18: '8',
	0xff19: '9',
	0xff1a: ':',
	0xff1b: ';',
	0xff1c: '<',
	0xff1d: '=',
	0xff1e: '>',
	0xff1f: '?',
	0xff20: '@',
	0xff21: 'A',
	0xff22: 'B',
	0xff23: 'C',
	0xff24: 'D',
	0xff25: 'E',
	0xff26: 'F',
	0xff27: 'G',
	0xff28: 'H',
	0xff29: 'I',
	0xff2a: 'J',
	0xff2b: 'K',
	0xff2c: 'L',
	0xff2d: 'M',
	0xff2e: 'N',
	0xff2f: 'O',
	0xff30: 'P',
	0xff31: 'Q',
	0xff32: 'R',
	0xff33: 'S',
	0xff34: 'T',
	0xff35: 'U',
	0xff36: 'V',
	0xff37: 'W',
	0xff38: 'X',
	0xff39: 'Y',
	0xff3a: 'Z',
	0xff3b: '[',
	0xff3c: '\\',
	0xff3d: ']',
	0xff3e: '^',
	0xff3f: '_',
	0xff40: '`',
	0xff41: 'a',
	0xff42: 'b',
	0xff43: 'c',
	0xff44: 'd',
	0xff45: 'e',
	0xff46: 'f',
	0xff47: 'g',
	0xff48: 'h',
	0xff49: 'i',
	0xff4a: 'j',
	0xff4b: 'k',
	0xff4c: 'l',
	0xff4d: 'm',
	0xff4e: 'n',
	0xff4f: 'o',
	0xff50: 'p',
	0xff51: 'q',
	0xff52: 'r',
	0xff53: 's',
	0xff54: 't',
	0xff55: 'u',
	0xff56: 'v',
	0xff57: 'w',
	0xff58: 'x',
	0xff59: 'y',
	0xff5a: 'z',
	0xff5b: '{',
	0xff5c: '|',
	0xff5d: '}',
	0xff5e: '~',
}
