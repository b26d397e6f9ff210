// Package grammarfile reads language definitions written in YAML.
//
// A definition holds one stem grammar and its scripts:
//
//	name: Japanese
//	stem:
//	  balance: [2, 12, 8, 2, 1]
//	  budget: {attempts: 0, timeout: 2s}
//	  syllables:
//	    - prefix: "<"
//	      suffix: ">"
//	      position: null          # or 0, -1, [0, -1]
//	      segments:
//	        - phonemes: [["_", 16], ["k", 5], "s"]   # bare string = weight 1
//	  filters:
//	    - match: "_y"
//	    - match: "n><_"
//	      chance: 0.9
//	    - contains: "cs"
//	tables:
//	  hiragana: {"<ka": "か"}
//	shared:
//	  helpers:
//	    - pattern: "[<>]"
//	      with: ""
//	scripts:
//	  - name: Hiragana
//	    tag: ja-Hira
//	    normalize: NFC
//	    replacements:
//	      - pattern: "<.?[aiueo]"
//	        table: hiragana
//	      - literal: "_"
//	        with: ""
//	      - include: helpers
//
// Patterns use Go regexp syntax and ${1}-style references in templates.
// Unknown keys are rejected, so typos surface as ErrInvalidDefinition
// rather than silently ignored rules.
package grammarfile
