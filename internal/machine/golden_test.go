package machine

// Ciphertext recorded from a reference run of each machine on a stream of A.

const goldenI_II_III_B = "" +
	"BDZGOWCXLTKSBTMCDLPBMUQOFXYHCXTGYJFLINHNXSHIUNTHEO" +
	"RXPQPKOVHCBUBTZSZSOOSTGOTFSODBBZZLXLCYZXIFGWFDZEEQ" +
	"IBMGFJBWZFCKPFMGBXQCIVIBBRNCOCJUVYDKMVJPFMDRMTGLWF" +
	"OZLXGJEYYQPVPBWNCKVKLZTCBDLDCTSNRCOOVPTGBVBBISGJSO" +
	"YHDENCTNUUKCUGHREVWBDJCTQXXOGLEBZMDBRZOSXDTZSZBGDC" +
	"FPRBZYQGSNCCHGYEWOHVJBYZGKDGYNNEUJIWCTYCYTUUMBOYVU" +
	"NNQUKKSOBSCORSUOSCNVROQLHEUDSUKYMIGIBSXPIHNTUVGGHI" +
	"FQTGZXLGYQCNVNSRCLVPYOSVRBKCEXRNLGDYWEBFXIVKKTUGKP" +
	"VMZOTUOGMHHZDREKJHLEFKKPOXLWBWVBYUKDTQUHDQTREVRQJM" +
	"QWNDOVWLJHCCXCFXRPPXMSJEZCJUFTBRZZMCSSNJNYLCGLOYCI" +
	"TVYQXPDIYFGEFYVXSXHKEGXKMMDSWBCYRKIZOCGMFDDTMWZTLS" +
	"SFLJMOOLUUQJMIJSCIQVRUISTLTGNCLGKIKTZHRXENRXJHYZTL" +
	"XICWWMYWXDYIBLERBFLWJQYWONGIQQCUUQTPPHBIEHTUVGCEGP" +
	"EYMWICGKWJCUFKLUIDMJDIVPJDMPGQPWITKGVIBOOMTNDUHQPH" +
	"GSQRJRNOOVPWMDNXLLVFIIMKIEYIZMQUWYDPOULTUWBUKVMMWR" +
	"LQLQSQPEUGJRCXZWPFYIYYBWLOEWROUVKPOZTCEUWTFJZQWPBQ" +
	"LDTTSRMDFLGXBXZRYQKDGJRZEZMKHJNQYPDJWCJFJLFNTRSNCN" +
	"LGSSGJCDLXUJBLTFGKHJGQUNCQDESTXZDTUWJBROVGJSFRMRWE" +
	"XTVHIITRFYGPDUFBMHFGIICNXBKEFRQPGDTVHSWNBENJGRHQQQ" +
	"CVNIXXNVCOHXYGKPDZIJELWNSJISWIUIDNIGHVTGYEVPBMZXYW" +
	"VDIKYVEFEKMCTMRUWOWUCJVFUGXLCTSIXTCJNXLKWVHDDDMVPI" +
	"MEDXYZPCIQPQKLOVERJDUOWRWYCXYKMPPLZFEWPUNZQMOETYFO" +
	"UXTWTHSYYREOMUQCMITURDSFMMSORLICQTPPRNWEUPJQEXBCZN" +
	"JJWJCUFKOMQIBJLHHYNCVCQYGIBEZFYGTDSFGQYZUQXYVUDRYT" +
	"KIXZLSKRVTEFLSNOIWPXTFQMVJMYWFUPTMYHCZCCXOFSHFFSLW" +
	"RSNVMLFQIPBNXWMTRSVFQSPNZOSULTUNRVQBUEKDKPPNEYGNVM" +
	"HMEEXYRQGXHWWQEXYGBXLEPKSPQSMCXSNGTQSPWGGOQDJHVRRI" +
	"ELKTIGQQKOMBOYOUVGDHTCOEEWKNHHDCOVQZBVBBFSPQQONXTY" +
	"YHXZMRODBBBHZWYDODFLPRUCBDHTCRHTUHHXWJMTOSYUUJZIWX" +
	"YEVBKGFHYCSGLTBOBLVSPCQOWBTRVGSGFTFSDNLTMYOXFUGKMZ" +
	"ZSOHXCNGFUGQPELSPSMRTXSTTPIUNLDFIFKCLVSQWLQONLYVNW" +
	"JHYKBHRIHLNGIHDMDSHEJHRZIGZKUMYZVYOPCBMZYIBTZFYGID"

const goldenRingVGI = "" +
	"HLKGSNQVEQPFFOROWZLBXPZPNCLYYEKWCEQDKEXIJIUQEYZGID" +
	"DJOUEHVVOVEYQZDWUFXNHDCHZFLINTEMFZIHUSBPEDBCQMZJUC" +
	"BEWDCJDLOKNGHEUSVFFGLIBOFGHBHGEXNCOBWOPBGHKIYLWOED" +
	"WPGODOXLXFPEZLITBMWUEPWLBEDPHYHLLDCEEWPIGHTEEYXCEY" +
	"ZJBCJIWZOOUHQJUFNFSWICMBKYXNJSWKUOUUDIVUTRRVYIWZEX" +
	"QRTBMFYEOWIRHZNRXUNLCJRJQEBWNXERNTXLKDEZUKEEQERSZB" +
	"EPGGMIDNMPFKDJCMNCVEQLCLZSKTFLKEHEPJYKOQRHWSBKZXVG" +
	"YQOMLBYIYNOSIMLRJYFWLHNXCJCVVRHLTESVDNORHYKEWSKBXX" +
	"MHNCRZGVYXTWGUIOWGTIFHLHWRYZJLEDNLJEKQYCZENBVLILMG" +
	"DEFSBKKBZGMZTDQFFJYVXDPQYWMEOSZDEVUXBUTKHMHCSZCBKI" +
	"ZXYECSEUIVLOROGCJMPKVOBZIJMKZFWZSCUVCRVVVIGMCOKCDG" +
	"UHDKKNBFJDTKYHTBKGXHOQHHKZEMKEQYTHGJWBOVIDORLTROKU" +
	"YYVKCPUYLPFSHPWHGDDPTJSZMVDQOHYRGHNITKPYPORFFVDBPH" +
	"JUUCVNWXJPBRWTYWTGMQRBGOFYPTMUCBRSCMXBMCKZUJVVMQPP" +
	"CBUMOLBGZGRBZYRIQLMKEOQJKXDLJDQQXJIJTJBDMITXYBECYH" +
	"XZDXRURBVYFEQVVKQXQGHIGWSBFYSBFJQBGUQJUGPPFETSHNDL" +
	"SKXIQSSFWINXTWSLYRTPTVRPUZTFXMBCERRDKOIOSYVJZUURTB" +
	"RWYWZUPWDFGGTIESYKIFDPNULHHREWVULDMHWETMVLSTBOWWBY" +
	"NMLTFEGBNBPRYQCUCIDKIJQXZRMHUQROKIBZNHRMSMSZUYVPBZ" +
	"KKZSLWOFLLNSOLJHSDHWVOENDSQBKSHJOFLJLKWQTXXFGVZREE"

const goldenPlugboard = "" +
	"EEPCBEVSCTXNWCCGUXKZLCGMUVLHYBRSQYRRTJTMQIDJJBJVHC" +
	"TFHYXQPKPMIUCRJVVRMIVKUQLLPMYXJLWHIQVNQSOCRDRBMCWW" +
	"LUVUFXSJRUEVWLNBSRYNUCKTMMXSMIGCCNYHQDKJXCXWBQTTXZ" +
	"TLLYRQLXOEGISKDVBTDTMLDQDVKDUIFKDYFFSNNFEWWSOISHJL" +
	"YNDNLUWUUXHJKJMOOGXGCFLJYXNZESUBZELHIMUFFFQZMOWVRU" +
	"MILYYNTRCRQSJCFUJRBZCRDLRNLTOKBTXSRYGZXLIUBTVJPXEI" +
	"BDOLRDJWXIHGGJEHNKODEEKHIPKWZPROGXQRJWQRTODWOZIUOX" +
	"RDVTIKZDPJDOPGPTGHNQWKDRIPVLQOONQWKTQHJNWGEZSXGMJP" +
	"TDHUOIWJWNJKOJNXMMBRUKKOMQVBTFEWJWVTBYVCMEUCMNWVIT" +
	"MJJRSKBOFXPKKJYOKHVHCLSXZJGMFUWSTVXMGQUQQQJOVFUVOC" +
	"XXHHJIQVFPMKQLUQYHZPNSISQLGRZHJIRIFZILTUJMYPGLVKNS" +
	"YKYKDGGZWPLVGXRWGNNBEOWHQPVROIUCEQQDXVCHZRBBRHNOPM" +
	"GDQGWTLITWOCWIHFIHBSFEBUXPQIROLTUNGTCCJJZTNOXORRRY" +
	"QWFFRRFBQYQYUVGNMRECNHWSWHEGQWEJVCUMYTLNTFTOFFFLCG" +
	"SMIFFFOCCQHHTIHUFIOKEBNVUXXKTUESENVFPDSTFIWXHLSHBC" +
	"LKBYVXFFOSRTHZBCVTRQKCGZMPVXXSZIPETUXXJRFUGSQFXWEZ" +
	"NYNHZKIVIVVNVMIVXVQGMLPYPNPNDHKTLTQXQQZOUONSMVHYMX" +
	"IGQCFUGBOHQJJSLYUGHHWQLMNWTMZYEBLLKDSOEWYUNIRCWRWQ" +
	"TNBHKLJNNNBMWESTDEKBCJNFZGVWJMPYDYLEFGYQGHPVVUIPHU" +
	"VZVPXUUQXPPPGKNZEISZZKXHXOPUQXYYTRTMQVLHHOFWMYTNON"

const goldenFourRotor = "" +
	"EGRRRKKJWGPOMEBDTOZBRJJCGXTCJGMVRZWKUJVIZJDTCICZZX" +
	"GYEXUGPTQPELPLXQTWMKBVOXEIWXHGORSJFIPHYGUCITNFRRPG" +
	"PRNJIYEBKXDJUGITLRMMNOLCNQTFCJROWJEDSQKHNDLQKKWBHP" +
	"FOTJTCZPXSJVFTOLEGVBLMUFRFNGMFESIQZQKGHYWXWDXXELXT" +
	"KPHXQNGWHXRWDVOJGWHZVVNQJOVGZGFKKZIDFCWERUGWEJIYCT" +
	"DBNICGIRHQITUBODZUUELQHLDGLRLCKBUUXDCOTNEKDZBGUDQZ" +
	"PJTQKPQWYXYPNNYJDFHGEHXIDXDWLRSXWREIHQDLOKQYFCLSVY" +
	"ETWRLYRGZYQQNOMUEWKLZQQLSQYFPRIUHUQGQQXOIIBWJJMLCC" +
	"STKCMTIHJSGSPRQNJVSBUYRSPOYJZQDVERUJEPRBJLKFLPFNNI" +
	"FZEFVKIORMNLJHOEUKUTKFOWSXXYOIJVBNMKVMWBBZTZCCVNWV" +
	"NMXSJNVZWNPHGCTIKZPPXOMOVVIIZJIMVKIPYIIZJQLYSTRDFG" +
	"YQGTOIOESLHGOIDCILBUETBOPQBYLJLUQSMTGSHOZOPBODUBCY" +
	"INMRWMMDIRGKJTQHFLJQKROKRKKBZUUUOYHGMNBWZFZGZZEIKY" +
	"ECVQMBRUSHFJZDZXUVQLBGZHHQIQKPHUUVXYPIBWDNWRMVWOLZ" +
	"WXZZVGXGYBPYYWNCLLGGQFBZVNZYESVVHFEKOKGTLIMREHWXYT" +
	"TQROFHLQIRJDSVDFJKSFBNUBJKCMJRGVDFFGHYEXHFXXXLVJEB" +
	"EXSNKVHEOFROWBQKCEGIDKPRYUCLDJPMBPUVLZCUIKGCIICHFD" +
	"WZUUUTYIQNTZIMTRWCRXBNDJZRJYVFQXGGYRPWURLKELQFUGJX" +
	"KVFRRTJHOKFWOFZVNWHFPUVWLCKJMFYBNGRXCDFNXTJMJVBGOC" +
	"GOHFUBOHKEJFUDFYFHSNQTTSHQFPGXIUSEVYTDVSIUYRJUKVFP" +
	"BDBIDXFIFZOWUYECCUZLBWPHYLBSXCQPBQMJHGLVTIJXSEVFMU" +
	"BLOOGZHBBNYUQPRBQKNWSZWVRSRLGSWBJPBLVZLLBYEZKCSBQP" +
	"SHCKZKSPMKIQJKHYVUGDFPYPHXGWIWNXQWUWPMTQEIHQRQQMGZ" +
	"MEXLVCKPSNKYVSUKXZQZGDFZWQTOBIMKISCSJPTTEFYDYUYNHC" +
	"CFPLHBXUMUYMCJZXNDMFISSBSEMQGULIKXQTOWOHSEGMEIFNWR" +
	"YKQKLLHFQUTUBETHUWGDNVJNSCSIFERDLMRJUTTIBBCRVCMWVS" +
	"LGCRPJWJLCZEGTTTNOJVCLPRWJBJUBUYCKPPYGBOZMUFPNNTZF" +
	"VIFQQDGUUJXDCRLVFNJOPVXVTZWHOMQCGUJJLVCFQTFBDOYIOZ" +
	"DLBYESYFLFTNETTLRNZTZJBXSFZRVHYMOBSMRRFKZJJIUURJYV" +
	"GBDSWNCJGNLLVHVQGOIECYNWWBXVOOUJOINYIXGWMDRRFCOCOL" +
	"UDVNQGJWPKWWFUUNHMGUUNOXZVWRSCFHNWLGERILXNHJFURDUU" +
	"EJVWSYWSSZMILIWEGHVFBDOMROOBCPDHNELHUMPXPERTXPBJON"
